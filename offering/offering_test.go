package offering

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castshare/libcastshare-go/asset"
)

func makeAccount(seed byte) asset.AccountID {
	var a asset.AccountID
	for i := range a {
		a[i] = seed
	}
	return a
}

const testNow = int64(1_700_000_000)

// --- Creation tests ---

func TestNew_Video(t *testing.T) {
	creator := makeAccount(0xAA)
	terms := NewVideoTerms(big.NewInt(10), 28, testNow)

	off, err := New(creator, big.NewInt(1000), big.NewInt(100), terms, testNow)
	require.NoError(t, err)

	assert.Equal(t, creator, off.Creator)
	assert.Equal(t, int64(1000), off.TotalShares.Int64())
	assert.Equal(t, int64(100), off.BasePrice.Int64())
	assert.Equal(t, int64(1000), off.RemainingShares.Int64())
	assert.Equal(t, asset.Video, off.Kind())
	assert.Equal(t, testNow, terms.StartDate)
	assert.Equal(t, testNow+28*86_400, terms.SaleEndDate)
}

func TestNew_Stream(t *testing.T) {
	streamStart := testNow + 86_400
	terms := NewStreamTerms(big.NewInt(1000), 12, streamStart)

	off, err := New(makeAccount(0xAA), big.NewInt(1000), big.NewInt(100), terms, testNow)
	require.NoError(t, err)

	assert.Equal(t, asset.Stream, off.Kind())
	assert.Equal(t, streamStart-12*3600, terms.PreLiveStart)
	assert.Equal(t, streamStart, terms.StreamStart)
}

func TestNew_Rejects(t *testing.T) {
	streamStart := testNow + 86_400

	tests := []struct {
		name        string
		totalShares *big.Int
		basePrice   *big.Int
		terms       Terms
	}{
		{"zero total shares", big.NewInt(0), big.NewInt(100), NewVideoTerms(big.NewInt(10), 28, testNow)},
		{"negative total shares", big.NewInt(-5), big.NewInt(100), NewVideoTerms(big.NewInt(10), 28, testNow)},
		{"zero base price", big.NewInt(1000), big.NewInt(0), NewVideoTerms(big.NewInt(10), 28, testNow)},
		{"negative base price", big.NewInt(1000), big.NewInt(-1), NewVideoTerms(big.NewInt(10), 28, testNow)},
		{"negative price increment", big.NewInt(1000), big.NewInt(100), NewVideoTerms(big.NewInt(-1), 28, testNow)},
		{"max price equals base", big.NewInt(1000), big.NewInt(100), NewStreamTerms(big.NewInt(100), 12, streamStart)},
		{"max price below base", big.NewInt(1000), big.NewInt(100), NewStreamTerms(big.NewInt(50), 12, streamStart)},
		{"pre-live already started", big.NewInt(1000), big.NewInt(100), NewStreamTerms(big.NewInt(1000), 25, testNow+86_400)},
		{"pre-live starts exactly now", big.NewInt(1000), big.NewInt(100), NewStreamTerms(big.NewInt(1000), 24, testNow+86_400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(makeAccount(0x01), tt.totalShares, tt.basePrice, tt.terms, testNow)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestNew_CopiesAmounts(t *testing.T) {
	total := big.NewInt(1000)
	off, err := New(makeAccount(0x01), total, big.NewInt(100), NewVideoTerms(big.NewInt(0), 7, testNow), testNow)
	require.NoError(t, err)

	total.SetInt64(1)
	assert.Equal(t, int64(1000), off.TotalShares.Int64())
	assert.Equal(t, int64(1000), off.RemainingShares.Int64())
}

// --- Window tests ---

func TestVideoTerms_WindowOpen(t *testing.T) {
	terms := NewVideoTerms(big.NewInt(10), 1, testNow) // 1 day sale
	end := testNow + 86_400

	assert.True(t, terms.WindowOpen(testNow))
	assert.True(t, terms.WindowOpen(end), "sale end date is inclusive")
	assert.False(t, terms.WindowOpen(end+1))
}

func TestStreamTerms_WindowOpen(t *testing.T) {
	streamStart := testNow + 86_400
	terms := NewStreamTerms(big.NewInt(1000), 12, streamStart)

	assert.True(t, terms.WindowOpen(testNow))
	assert.True(t, terms.WindowOpen(streamStart-1))
	assert.False(t, terms.WindowOpen(streamStart), "stream start is exclusive")
	assert.False(t, terms.WindowOpen(streamStart+3600))
}

// --- Pricing through the offering ---

func TestOffering_CurrentPrice(t *testing.T) {
	off, err := New(makeAccount(0x01), big.NewInt(1000), big.NewInt(100),
		NewVideoTerms(big.NewInt(10), 28, testNow), testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(100), off.CurrentPrice(testNow).Int64())
	assert.Equal(t, int64(130), off.CurrentPrice(testNow+3*3600).Int64())
}

func TestOffering_SoldShares(t *testing.T) {
	off, err := New(makeAccount(0x01), big.NewInt(1000), big.NewInt(100),
		NewVideoTerms(big.NewInt(10), 28, testNow), testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(0), off.SoldShares().Int64())
	off.RemainingShares = big.NewInt(400)
	assert.Equal(t, int64(600), off.SoldShares().Int64())
}

// --- Stream status machine ---

func TestStreamTerms_Status(t *testing.T) {
	streamStart := testNow + 86_400
	terms := NewStreamTerms(big.NewInt(1000), 12, streamStart)
	preLive := terms.PreLiveStart

	tests := []struct {
		name string
		now  int64
		want StreamStatus
	}{
		{"before pre-live", preLive - 1, StatusUpcoming},
		{"at pre-live start", preLive, StatusPreLive},
		{"mid pre-live", preLive + 3600, StatusPreLive},
		{"at stream start", streamStart, StatusLive},
		{"after stream start", streamStart + 7200, StatusLive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terms.Status(tt.now))
		})
	}
}

func TestStreamTerms_StatusMonotone(t *testing.T) {
	terms := NewStreamTerms(big.NewInt(1000), 6, testNow+43_200)

	prev := terms.Status(0)
	for now := int64(0); now <= testNow+2*86_400; now += 3599 {
		cur := terms.Status(now)
		require.GreaterOrEqual(t, cur, prev, "status reverted at t=%d", now)
		prev = cur
	}
}

func TestStreamStatus_String(t *testing.T) {
	assert.Equal(t, "UPCOMING", StatusUpcoming.String())
	assert.Equal(t, "PRE_LIVE", StatusPreLive.String())
	assert.Equal(t, "LIVE", StatusLive.String())
}
