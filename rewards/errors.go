package rewards

import "errors"

var (
	// ErrWatchTooShort indicates a watch below the minimum rewardable
	// duration.
	ErrWatchTooShort = errors.New("rewards: watch duration too short")

	// ErrInvalidRate indicates a zero or negative per-minute rate.
	ErrInvalidRate = errors.New("rewards: invalid reward rate")
)
