// Package rewards computes watch-to-earn token payouts: viewers earn
// platform tokens per full minute of a video or stream watched.
// Issuing the tokens is the payments layer's job; this package only
// computes the amount owed.
package rewards

import (
	"fmt"
	"math/big"
)

// MinWatchSeconds is the shortest watch that earns a reward.
const MinWatchSeconds = 60

// ForWatch computes the reward for a watch of the given duration:
// perMinute tokens (minor units) for every full minute watched.
// Watches shorter than MinWatchSeconds earn nothing and fail with
// ErrWatchTooShort.
func ForWatch(durationSeconds int64, perMinute *big.Int) (*big.Int, error) {
	if perMinute == nil || perMinute.Sign() <= 0 {
		return nil, fmt.Errorf("%w: per-minute rate must be positive", ErrInvalidRate)
	}
	if durationSeconds < MinWatchSeconds {
		return nil, fmt.Errorf("%w: watched %ds", ErrWatchTooShort, durationSeconds)
	}

	minutes := big.NewInt(durationSeconds / 60)
	return minutes.Mul(minutes, perMinute), nil
}
