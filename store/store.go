// Package store persists per-asset offering, investment, and revenue
// records keyed by (asset kind, asset id).
//
// Two implementations are provided: MemStore for tests and embedding,
// and BoltStore for durable single-file persistence. Both encode
// records with gob so a record read back never aliases the value that
// was written.
package store

import (
	"bytes"
	"encoding/gob"

	"github.com/castshare/libcastshare-go/asset"
	"github.com/castshare/libcastshare-go/ledger"
	"github.com/castshare/libcastshare-go/offering"
)

func init() {
	// Offering.Terms is an interface field; register both variants so
	// gob can round-trip it.
	gob.Register(&offering.VideoTerms{})
	gob.Register(&offering.StreamTerms{})
}

// Store persists the state of every offering. A purchase commits the
// updated offering and the new investment record as one unit.
type Store interface {
	// CreateOffering stores a new offering with an empty investment
	// ledger and, when acct is non-nil, its initial revenue account.
	// Both records commit as one unit. Returns ErrDuplicateOffering
	// if the id is already taken.
	CreateOffering(kind asset.Kind, id asset.AssetID, off *offering.Offering, acct *ledger.RevenueAccount) error

	// GetOffering retrieves an offering.
	GetOffering(kind asset.Kind, id asset.AssetID) (*offering.Offering, error)

	// OfferingExists reports whether an offering exists for the id.
	OfferingExists(kind asset.Kind, id asset.AssetID) (bool, error)

	// CommitPurchase writes the updated offering and appends one
	// investment record atomically.
	CommitPurchase(kind asset.Kind, id asset.AssetID, off *offering.Offering, inv *ledger.Investment) error

	// GetInvestments returns the investment records for the asset in
	// append order. The list is empty (not an error) for an offering
	// with no purchases yet.
	GetInvestments(kind asset.Kind, id asset.AssetID) ([]*ledger.Investment, error)

	// GetRevenue retrieves the revenue account for the asset.
	// Returns ErrRevenueNotFound if none has been created.
	GetRevenue(kind asset.Kind, id asset.AssetID) (*ledger.RevenueAccount, error)

	// PutRevenue stores the revenue account for the asset.
	PutRevenue(kind asset.Kind, id asset.AssetID, acct *ledger.RevenueAccount) error
}

// assetKey encodes (kind, id) as a 33-byte key: kind byte then id.
func assetKey(kind asset.Kind, id asset.AssetID) []byte {
	k := make([]byte, 1+asset.IDSize)
	k[0] = byte(kind)
	copy(k[1:], id[:])
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
