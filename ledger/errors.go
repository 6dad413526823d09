package ledger

import "errors"

var (
	// ErrInvalidAmount indicates a zero or negative monetary amount.
	ErrInvalidAmount = errors.New("ledger: invalid amount")

	// ErrOverDistribution indicates a distribution that would exceed
	// the deposited revenue.
	ErrOverDistribution = errors.New("ledger: distribution exceeds deposited revenue")

	// ErrNothingToDistribute indicates a zero or negative payment.
	ErrNothingToDistribute = errors.New("ledger: nothing to distribute")

	// ErrNoPositions indicates an empty investor position list.
	ErrNoPositions = errors.New("ledger: no investor positions")

	// ErrZeroTotalShares indicates a zero share denominator.
	ErrZeroTotalShares = errors.New("ledger: zero total shares")
)
