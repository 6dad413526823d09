package service

import (
	"fmt"

	"github.com/castshare/libcastshare-go/config"
	"github.com/castshare/libcastshare-go/store"
)

// Open validates cfg, opens the ledger database under cfg.DataDir, and
// returns a service backed by it. The returned close function releases
// the database.
func Open(cfg config.Config, opts ...Option) (*Service, func() error, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, nil, fmt.Errorf("service: invalid config: %w", err)
	}

	st, err := store.OpenBoltStore(cfg.DatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return New(st, opts...), st.Close, nil
}
