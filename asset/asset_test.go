package asset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"
)

func TestKind(t *testing.T) {
	assert.True(t, Video.Valid())
	assert.True(t, Stream.Valid())
	assert.False(t, Kind(0).Valid())
	assert.False(t, Kind(3).Valid())

	assert.Equal(t, "video", Video.String())
	assert.Equal(t, "stream", Stream.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestAssetIDFromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, IDSize)
	id, err := AssetIDFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id[:])

	_, err = AssetIDFromBytes(raw[:31])
	assert.ErrorIs(t, err, ErrInvalidAssetID)

	_, err = AssetIDFromBytes(append(raw, 0x00))
	assert.ErrorIs(t, err, ErrInvalidAssetID)
}

func TestDeriveAssetID(t *testing.T) {
	a, err := DeriveAssetID(Video, "catalog/1234")
	require.NoError(t, err)
	b, err := DeriveAssetID(Video, "catalog/1234")
	require.NoError(t, err)
	assert.Equal(t, a, b, "derivation is deterministic")

	c, err := DeriveAssetID(Stream, "catalog/1234")
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "the kind is part of the derivation")

	d, err := DeriveAssetID(Video, "catalog/5678")
	require.NoError(t, err)
	assert.NotEqual(t, a, d)

	_, err = DeriveAssetID(Video, "")
	assert.ErrorIs(t, err, ErrInvalidAssetID)

	_, err = DeriveAssetID(Kind(0), "catalog/1234")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestAccountFromPublicKey(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()

	acct, err := AccountFromPublicKey(pub.Compressed())
	require.NoError(t, err)
	assert.False(t, acct.IsZero())

	// Derivation is a pure function of the key.
	again, err := AccountFromPublicKey(pub.Compressed())
	require.NoError(t, err)
	assert.Equal(t, acct, again)

	_, err = AccountFromPublicKey([]byte{0x02, 0x03})
	assert.ErrorIs(t, err, ErrInvalidAccount)

	_, err = AccountFromPublicKey(nil)
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestAccountFromAddress(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	addr, err := script.NewAddressFromPublicKey(priv.PubKey(), true)
	require.NoError(t, err)

	acct, err := AccountFromAddress(addr.AddressString)
	require.NoError(t, err)

	// The address round-trips to the same HASH160 as the public key.
	fromKey, err := AccountFromPublicKey(priv.PubKey().Compressed())
	require.NoError(t, err)
	assert.Equal(t, fromKey, acct)

	_, err = AccountFromAddress("not an address")
	assert.ErrorIs(t, err, ErrInvalidAccount)

	_, err = AccountFromAddress("")
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestAccountIDString(t *testing.T) {
	var a AccountID
	a[0] = 0x01
	a[19] = 0xFF
	assert.Equal(t, "01000000000000000000000000000000000000ff", a.String())
	assert.False(t, a.IsZero())

	var zero AccountID
	assert.True(t, zero.IsZero())
}
