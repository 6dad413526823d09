// Package asset defines the identifiers shared by every castshare
// component: the 32-byte asset id, the 20-byte account id, and the
// asset kind tag.
//
// Accounts are P2PKH-style identities: HASH160 of a compressed
// secp256k1 public key. The host is responsible for authenticating
// callers; this package only gives it a canonical representation.
package asset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/bsv-blockchain/go-sdk/script"
)

// IDSize is the byte length of an AssetID.
const IDSize = 32

// AccountSize is the byte length of an AccountID.
const AccountSize = 20

// Kind distinguishes the two asset variants.
type Kind uint8

const (
	// Video is a pre-recorded video asset.
	Video Kind = 1

	// Stream is a live-stream asset.
	Stream Kind = 2
)

// Valid reports whether k is a known asset kind.
func (k Kind) Valid() bool {
	return k == Video || k == Stream
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Video:
		return "video"
	case Stream:
		return "stream"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// AssetID identifies one video or stream.
type AssetID [IDSize]byte

// AccountID identifies one creator or investor account.
type AccountID [AccountSize]byte

// String returns the hex encoding of the asset id.
func (id AssetID) String() string {
	return hex.EncodeToString(id[:])
}

// String returns the hex encoding of the account id.
func (a AccountID) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether a is the all-zero account id.
func (a AccountID) IsZero() bool {
	var zero AccountID
	return a == zero
}

// AssetIDFromBytes copies a 32-byte slice into an AssetID.
func AssetIDFromBytes(b []byte) (AssetID, error) {
	var id AssetID
	if len(b) != IDSize {
		return id, fmt.Errorf("%w: asset id must be %d bytes, got %d", ErrInvalidAssetID, IDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// DeriveAssetID computes a deterministic asset id for hosts that key
// assets by an external reference (content URI, catalog id) rather
// than raw bytes: SHA256("castshare/" || kind || "/" || reference).
func DeriveAssetID(kind Kind, reference string) (AssetID, error) {
	var id AssetID
	if !kind.Valid() {
		return id, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if reference == "" {
		return id, fmt.Errorf("%w: empty reference", ErrInvalidAssetID)
	}
	h := sha256.New()
	h.Write([]byte("castshare/"))
	h.Write([]byte{byte(kind)})
	h.Write([]byte("/"))
	h.Write([]byte(reference))
	copy(id[:], h.Sum(nil))
	return id, nil
}

// AccountFromPublicKey derives the account id for a compressed
// secp256k1 public key: HASH160(pubkey) = RIPEMD160(SHA256(pubkey)).
func AccountFromPublicKey(pubKeyBytes []byte) (AccountID, error) {
	var acct AccountID
	pub, err := ec.PublicKeyFromBytes(pubKeyBytes)
	if err != nil {
		return acct, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}
	copy(acct[:], bsvhash.Hash160(pub.Compressed()))
	return acct, nil
}

// AccountFromAddress parses a base58check P2PKH address into an
// account id.
func AccountFromAddress(addr string) (AccountID, error) {
	var acct AccountID
	parsed, err := script.NewAddressFromString(addr)
	if err != nil {
		return acct, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}
	pkh := []byte(parsed.PublicKeyHash)
	if len(pkh) != AccountSize {
		return acct, fmt.Errorf("%w: pubkey hash must be %d bytes, got %d", ErrInvalidAccount, AccountSize, len(pkh))
	}
	copy(acct[:], pkh)
	return acct, nil
}
