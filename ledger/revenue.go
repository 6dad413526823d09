package ledger

import (
	"fmt"
	"math/big"
)

// RevenueAccount accumulates deposited revenue against distributed
// revenue for one asset. Both amounts are non-negative and only ever
// grow; DistributedAmount never exceeds TotalAmount.
type RevenueAccount struct {
	TotalAmount       *big.Int
	DistributedAmount *big.Int
	LastDistribution  int64 // unix seconds
}

// NewRevenueAccount returns a zeroed revenue account.
func NewRevenueAccount(now int64) *RevenueAccount {
	return &RevenueAccount{
		TotalAmount:       big.NewInt(0),
		DistributedAmount: big.NewInt(0),
		LastDistribution:  now,
	}
}

// Deposit adds a positive amount of revenue to the account.
func (r *RevenueAccount) Deposit(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: deposit must be positive", ErrInvalidAmount)
	}
	r.TotalAmount = new(big.Int).Add(r.TotalAmount, amount)
	return nil
}

// Undistributed returns TotalAmount - DistributedAmount.
func (r *RevenueAccount) Undistributed() *big.Int {
	return new(big.Int).Sub(r.TotalAmount, r.DistributedAmount)
}

// RecordDistribution marks amount as paid out at now. The amount must
// be positive and must not push DistributedAmount past TotalAmount.
func (r *RevenueAccount) RecordDistribution(amount *big.Int, now int64) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: distribution must be positive", ErrInvalidAmount)
	}
	next := new(big.Int).Add(r.DistributedAmount, amount)
	if next.Cmp(r.TotalAmount) > 0 {
		return fmt.Errorf("%w: distributed %s would exceed total %s",
			ErrOverDistribution, next, r.TotalAmount)
	}
	r.DistributedAmount = next
	r.LastDistribution = now
	return nil
}

// Clone returns a deep copy of the revenue account.
func (r *RevenueAccount) Clone() *RevenueAccount {
	if r == nil {
		return nil
	}
	return &RevenueAccount{
		TotalAmount:       new(big.Int).Set(r.TotalAmount),
		DistributedAmount: new(big.Int).Set(r.DistributedAmount),
		LastDistribution:  r.LastDistribution,
	}
}
