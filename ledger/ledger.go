// Package ledger holds the per-asset investment records and revenue
// accounting: who bought how many shares for how much, how much
// revenue has been deposited, and how much of it has been paid out.
//
// Investment records are append-only. They are never mutated, merged,
// or deleted; every derived quantity is a scan over the sequence.
package ledger

import (
	"math/big"

	"github.com/castshare/libcastshare-go/asset"
)

// Investment records one purchase of shares by one investor.
type Investment struct {
	Investor   asset.AccountID
	Shares     *big.Int
	AmountPaid *big.Int
	Timestamp  int64 // unix seconds
}

// SharesOf sums the shares bought by investor across the ledger.
func SharesOf(investments []*Investment, investor asset.AccountID) *big.Int {
	total := big.NewInt(0)
	for _, inv := range investments {
		if inv.Investor == investor {
			total.Add(total, inv.Shares)
		}
	}
	return total
}

// Position summarizes one investor's holdings in an asset.
type Position struct {
	Investor   asset.AccountID
	Shares     *big.Int
	AmountPaid *big.Int
}

// PositionOf aggregates the ledger entries for a single investor.
func PositionOf(investments []*Investment, investor asset.AccountID) *Position {
	pos := &Position{
		Investor:   investor,
		Shares:     big.NewInt(0),
		AmountPaid: big.NewInt(0),
	}
	for _, inv := range investments {
		if inv.Investor == investor {
			pos.Shares.Add(pos.Shares, inv.Shares)
			pos.AmountPaid.Add(pos.AmountPaid, inv.AmountPaid)
		}
	}
	return pos
}

// Positions aggregates the ledger into one position per investor, in
// order of each investor's first purchase.
func Positions(investments []*Investment) []*Position {
	index := make(map[asset.AccountID]*Position)
	var out []*Position
	for _, inv := range investments {
		pos, ok := index[inv.Investor]
		if !ok {
			pos = &Position{
				Investor:   inv.Investor,
				Shares:     big.NewInt(0),
				AmountPaid: big.NewInt(0),
			}
			index[inv.Investor] = pos
			out = append(out, pos)
		}
		pos.Shares.Add(pos.Shares, inv.Shares)
		pos.AmountPaid.Add(pos.AmountPaid, inv.AmountPaid)
	}
	return out
}
