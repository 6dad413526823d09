package ledger

import (
	"math/big"

	"github.com/castshare/libcastshare-go/asset"
)

// ClaimScale is the fixed-point scale the claim formula divides by.
const ClaimScale = 1_000_000

// Claimable computes the amount a claimant may withdraw from the
// undistributed revenue:
//
//	ratio     = claimantShares / totalShares   (truncating)
//	claimable = unclaimed * ratio / ClaimScale
//
// The division order is preserved from the platform contract this
// ledger replaces: the ratio truncates to zero for any claimant owning
// less than the full supply, so only a 100% owner ever claims a
// nonzero amount. Settlement for partial owners goes through
// Distribute instead.
func Claimable(unclaimed, claimantShares, totalShares *big.Int) *big.Int {
	if totalShares == nil || totalShares.Sign() == 0 {
		return big.NewInt(0)
	}
	ratio := new(big.Int).Quo(claimantShares, totalShares)
	claimable := new(big.Int).Mul(unclaimed, ratio)
	return claimable.Quo(claimable, big.NewInt(ClaimScale))
}

// Payout is one line of a settlement plan: the amount owed to one
// investor by the external payments component.
type Payout struct {
	Investor asset.AccountID
	Amount   *big.Int
}

// Distribute splits payment pro-rata across positions by share count.
// The last position receives the remainder so the split conserves the
// payment exactly despite integer division. totalShares is the
// denominator of every proportion and must equal the sum of position
// shares for the remainder policy to be fair.
func Distribute(payment *big.Int, positions []*Position, totalShares *big.Int) ([]*Payout, error) {
	if payment == nil || payment.Sign() <= 0 {
		return nil, ErrNothingToDistribute
	}
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	if totalShares == nil || totalShares.Sign() == 0 {
		return nil, ErrZeroTotalShares
	}

	payouts := make([]*Payout, len(positions))
	distributed := big.NewInt(0)

	for i, pos := range positions {
		payouts[i] = &Payout{Investor: pos.Investor}
		if i == len(positions)-1 {
			// Last investor gets the remainder.
			payouts[i].Amount = new(big.Int).Sub(payment, distributed)
			continue
		}
		amount := new(big.Int).Mul(payment, pos.Shares)
		amount.Quo(amount, totalShares)
		payouts[i].Amount = amount
		distributed.Add(distributed, amount)
	}

	return payouts, nil
}
