package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/castshare/libcastshare-go/asset"
	"github.com/castshare/libcastshare-go/ledger"
	"github.com/castshare/libcastshare-go/offering"
)

var (
	bucketOfferings   = []byte("offerings")
	bucketInvestments = []byte("investments")
	bucketRevenue     = []byte("revenue")
)

// BoltStore is a bbolt-backed implementation of Store. Every mutating
// call runs in a single write transaction, so a purchase commits the
// offering update and the investment append together or not at all.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketOfferings, bucketInvestments, bucketRevenue} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// investmentKey encodes an investment record key: asset key followed
// by an 8-byte big-endian sequence number for sorted append order.
func investmentKey(kind asset.Kind, id asset.AssetID, seq uint64) []byte {
	k := make([]byte, 1+asset.IDSize+8)
	k[0] = byte(kind)
	copy(k[1:], id[:])
	binary.BigEndian.PutUint64(k[1+asset.IDSize:], seq)
	return k
}

// nextInvestmentSeq counts the records under the asset prefix. Records
// are append-only and never deleted, so the count is the next sequence.
func nextInvestmentSeq(b *bbolt.Bucket, prefix []byte) uint64 {
	var n uint64
	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		n++
	}
	return n
}

// CreateOffering stores a new offering and, when acct is non-nil, its
// initial revenue account in one write transaction. The investment
// ledger starts empty implicitly: it is the set of keys under the
// asset prefix.
func (s *BoltStore) CreateOffering(kind asset.Kind, id asset.AssetID, off *offering.Offering, acct *ledger.RevenueAccount) error {
	if off == nil {
		return fmt.Errorf("%w: offering", ErrNilParam)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketOfferings)
		key := assetKey(kind, id)
		if b.Get(key) != nil {
			return ErrDuplicateOffering
		}
		data, err := encodeGob(off)
		if err != nil {
			return fmt.Errorf("boltstore: encode offering: %w", err)
		}
		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("boltstore: put offering: %w", err)
		}
		if acct != nil {
			acctData, err := encodeGob(acct)
			if err != nil {
				return fmt.Errorf("boltstore: encode revenue: %w", err)
			}
			if err := tx.Bucket(bucketRevenue).Put(key, acctData); err != nil {
				return fmt.Errorf("boltstore: put revenue: %w", err)
			}
		}
		return nil
	})
}

// GetOffering retrieves an offering.
func (s *BoltStore) GetOffering(kind asset.Kind, id asset.AssetID) (*offering.Offering, error) {
	var off offering.Offering
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketOfferings).Get(assetKey(kind, id))
		if data == nil {
			return ErrOfferingNotFound
		}
		if err := decodeGob(data, &off); err != nil {
			return fmt.Errorf("boltstore: decode offering: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &off, nil
}

// OfferingExists reports whether an offering exists for the id.
func (s *BoltStore) OfferingExists(kind asset.Kind, id asset.AssetID) (bool, error) {
	var exists bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket(bucketOfferings).Get(assetKey(kind, id)) != nil
		return nil
	})
	return exists, err
}

// CommitPurchase writes the updated offering and appends an investment
// record in one write transaction.
func (s *BoltStore) CommitPurchase(kind asset.Kind, id asset.AssetID, off *offering.Offering, inv *ledger.Investment) error {
	if off == nil {
		return fmt.Errorf("%w: offering", ErrNilParam)
	}
	if inv == nil {
		return fmt.Errorf("%w: investment", ErrNilParam)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		ob := tx.Bucket(bucketOfferings)
		key := assetKey(kind, id)
		if ob.Get(key) == nil {
			return ErrOfferingNotFound
		}

		offData, err := encodeGob(off)
		if err != nil {
			return fmt.Errorf("boltstore: encode offering: %w", err)
		}
		if err := ob.Put(key, offData); err != nil {
			return fmt.Errorf("boltstore: put offering: %w", err)
		}

		ib := tx.Bucket(bucketInvestments)
		seq := nextInvestmentSeq(ib, key)
		invData, err := encodeGob(inv)
		if err != nil {
			return fmt.Errorf("boltstore: encode investment: %w", err)
		}
		if err := ib.Put(investmentKey(kind, id, seq), invData); err != nil {
			return fmt.Errorf("boltstore: put investment: %w", err)
		}
		return nil
	})
}

// GetInvestments returns the investment records in append order.
func (s *BoltStore) GetInvestments(kind asset.Kind, id asset.AssetID) ([]*ledger.Investment, error) {
	var out []*ledger.Investment
	err := s.db.View(func(tx *bbolt.Tx) error {
		prefix := assetKey(kind, id)
		if tx.Bucket(bucketOfferings).Get(prefix) == nil {
			return ErrOfferingNotFound
		}

		c := tx.Bucket(bucketInvestments).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var inv ledger.Investment
			if err := decodeGob(v, &inv); err != nil {
				return fmt.Errorf("boltstore: decode investment: %w", err)
			}
			out = append(out, &inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetRevenue retrieves the revenue account for the asset.
func (s *BoltStore) GetRevenue(kind asset.Kind, id asset.AssetID) (*ledger.RevenueAccount, error) {
	var acct ledger.RevenueAccount
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRevenue).Get(assetKey(kind, id))
		if data == nil {
			return ErrRevenueNotFound
		}
		if err := decodeGob(data, &acct); err != nil {
			return fmt.Errorf("boltstore: decode revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// PutRevenue stores the revenue account for the asset.
func (s *BoltStore) PutRevenue(kind asset.Kind, id asset.AssetID, acct *ledger.RevenueAccount) error {
	if acct == nil {
		return fmt.Errorf("%w: revenue account", ErrNilParam)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := encodeGob(acct)
		if err != nil {
			return fmt.Errorf("boltstore: encode revenue: %w", err)
		}
		if err := tx.Bucket(bucketRevenue).Put(assetKey(kind, id), data); err != nil {
			return fmt.Errorf("boltstore: put revenue: %w", err)
		}
		return nil
	})
}
