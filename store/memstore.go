package store

import (
	"fmt"
	"sync"

	"github.com/castshare/libcastshare-go/asset"
	"github.com/castshare/libcastshare-go/ledger"
	"github.com/castshare/libcastshare-go/offering"
)

// MemStore is an in-memory implementation of Store for testing and
// light embedding. Records are held gob-encoded so reads never alias
// writes.
type MemStore struct {
	mu          sync.RWMutex
	offerings   map[string][]byte
	investments map[string][][]byte
	revenue     map[string][]byte
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		offerings:   make(map[string][]byte),
		investments: make(map[string][][]byte),
		revenue:     make(map[string][]byte),
	}
}

// CreateOffering stores a new offering with an empty investment
// ledger and, when acct is non-nil, its initial revenue account, as a
// single locked update.
func (s *MemStore) CreateOffering(kind asset.Kind, id asset.AssetID, off *offering.Offering, acct *ledger.RevenueAccount) error {
	if off == nil {
		return fmt.Errorf("%w: offering", ErrNilParam)
	}

	data, err := encodeGob(off)
	if err != nil {
		return fmt.Errorf("memstore: encode offering: %w", err)
	}
	var acctData []byte
	if acct != nil {
		if acctData, err = encodeGob(acct); err != nil {
			return fmt.Errorf("memstore: encode revenue: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := string(assetKey(kind, id))
	if _, exists := s.offerings[key]; exists {
		return ErrDuplicateOffering
	}
	s.offerings[key] = data
	s.investments[key] = nil
	if acctData != nil {
		s.revenue[key] = acctData
	}
	return nil
}

// GetOffering retrieves an offering.
func (s *MemStore) GetOffering(kind asset.Kind, id asset.AssetID) (*offering.Offering, error) {
	s.mu.RLock()
	data, ok := s.offerings[string(assetKey(kind, id))]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrOfferingNotFound
	}
	var off offering.Offering
	if err := decodeGob(data, &off); err != nil {
		return nil, fmt.Errorf("memstore: decode offering: %w", err)
	}
	return &off, nil
}

// OfferingExists reports whether an offering exists for the id.
func (s *MemStore) OfferingExists(kind asset.Kind, id asset.AssetID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.offerings[string(assetKey(kind, id))]
	return ok, nil
}

// CommitPurchase writes the updated offering and appends one
// investment record as a single locked update.
func (s *MemStore) CommitPurchase(kind asset.Kind, id asset.AssetID, off *offering.Offering, inv *ledger.Investment) error {
	if off == nil {
		return fmt.Errorf("%w: offering", ErrNilParam)
	}
	if inv == nil {
		return fmt.Errorf("%w: investment", ErrNilParam)
	}

	offData, err := encodeGob(off)
	if err != nil {
		return fmt.Errorf("memstore: encode offering: %w", err)
	}
	invData, err := encodeGob(inv)
	if err != nil {
		return fmt.Errorf("memstore: encode investment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := string(assetKey(kind, id))
	if _, exists := s.offerings[key]; !exists {
		return ErrOfferingNotFound
	}
	s.offerings[key] = offData
	s.investments[key] = append(s.investments[key], invData)
	return nil
}

// GetInvestments returns the investment records in append order.
func (s *MemStore) GetInvestments(kind asset.Kind, id asset.AssetID) ([]*ledger.Investment, error) {
	s.mu.RLock()
	key := string(assetKey(kind, id))
	_, exists := s.offerings[key]
	records := s.investments[key]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrOfferingNotFound
	}

	out := make([]*ledger.Investment, 0, len(records))
	for _, data := range records {
		var inv ledger.Investment
		if err := decodeGob(data, &inv); err != nil {
			return nil, fmt.Errorf("memstore: decode investment: %w", err)
		}
		out = append(out, &inv)
	}
	return out, nil
}

// GetRevenue retrieves the revenue account for the asset.
func (s *MemStore) GetRevenue(kind asset.Kind, id asset.AssetID) (*ledger.RevenueAccount, error) {
	s.mu.RLock()
	data, ok := s.revenue[string(assetKey(kind, id))]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrRevenueNotFound
	}
	var acct ledger.RevenueAccount
	if err := decodeGob(data, &acct); err != nil {
		return nil, fmt.Errorf("memstore: decode revenue: %w", err)
	}
	return &acct, nil
}

// PutRevenue stores the revenue account for the asset.
func (s *MemStore) PutRevenue(kind asset.Kind, id asset.AssetID, acct *ledger.RevenueAccount) error {
	if acct == nil {
		return fmt.Errorf("%w: revenue account", ErrNilParam)
	}
	data, err := encodeGob(acct)
	if err != nil {
		return fmt.Errorf("memstore: encode revenue: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue[string(assetKey(kind, id))] = data
	return nil
}
