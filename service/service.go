// Package service orchestrates the four mutating operations of the
// fractional-investment ledger: creating an offering, buying shares,
// depositing revenue, and claiming revenue, plus the read-only
// projections over them.
//
// Each mutating operation runs inside a per-asset critical section:
// all reads and writes for one call commit together or the call fails
// with state unchanged. Callers are identified by an AccountID the
// host has already authenticated; the service never re-verifies
// identity.
package service

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/castshare/libcastshare-go/asset"
	"github.com/castshare/libcastshare-go/ledger"
	"github.com/castshare/libcastshare-go/offering"
	"github.com/castshare/libcastshare-go/store"
)

// Service coordinates offerings, investments, and revenue for every
// asset in one store.
type Service struct {
	store store.Store
	nowFn func() int64

	mu    sync.Mutex
	locks map[lockKey]*sync.Mutex
}

type lockKey struct {
	kind asset.Kind
	id   asset.AssetID
}

// Option configures a Service.
type Option func(*Service)

// WithNow overrides the clock, for deterministic tests and hosts that
// supply their own time source.
func WithNow(now func() int64) Option {
	return func(s *Service) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// New creates a service over the given store.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		nowFn: func() int64 { return time.Now().Unix() },
		locks: make(map[lockKey]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// assetLock returns the mutex serializing mutations for one asset.
func (s *Service) assetLock(kind asset.Kind, id asset.AssetID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := lockKey{kind: kind, id: id}
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// CreateVideoOffering opens a share sale for a video. The caller
// becomes the offering's creator permanently. The sale runs from now
// until now + saleDurationDays, with the price stepping up by
// priceIncrement every elapsed hour.
func (s *Service) CreateVideoOffering(creator asset.AccountID, id asset.AssetID, totalShares, basePrice, priceIncrement *big.Int, saleDurationDays uint32) (*offering.Offering, error) {
	l := s.assetLock(asset.Video, id)
	l.Lock()
	defer l.Unlock()

	now := s.nowFn()
	terms := offering.NewVideoTerms(priceIncrement, saleDurationDays, now)
	off, err := offering.New(creator, totalShares, basePrice, terms, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateOffering(asset.Video, id, off, nil); err != nil {
		if errors.Is(err, store.ErrDuplicateOffering) {
			return nil, fmt.Errorf("%w: video %s", ErrOfferingExists, id)
		}
		return nil, err
	}
	return off, nil
}

// CreateStreamOffering opens a share sale for a live stream. The
// pre-live window is derived as streamStart - preLiveDurationHours and
// must lie strictly in the future. A zeroed revenue account is
// committed together with the offering; a failed creation leaves
// neither behind.
func (s *Service) CreateStreamOffering(creator asset.AccountID, id asset.AssetID, totalShares, basePrice, maxPrice *big.Int, preLiveDurationHours uint32, streamStart int64) (*offering.Offering, error) {
	l := s.assetLock(asset.Stream, id)
	l.Lock()
	defer l.Unlock()

	now := s.nowFn()
	terms := offering.NewStreamTerms(maxPrice, preLiveDurationHours, streamStart)
	off, err := offering.New(creator, totalShares, basePrice, terms, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateOffering(asset.Stream, id, off, ledger.NewRevenueAccount(now)); err != nil {
		if errors.Is(err, store.ErrDuplicateOffering) {
			return nil, fmt.Errorf("%w: stream %s", ErrOfferingExists, id)
		}
		return nil, err
	}
	return off, nil
}

// BuyShares purchases shares at the current curve price. The price is
// evaluated fresh inside the critical section; a quote obtained
// earlier through GetCurrentPrice is not binding.
func (s *Service) BuyShares(investor asset.AccountID, kind asset.Kind, id asset.AssetID, shares *big.Int) (*ledger.Investment, error) {
	if shares == nil || shares.Sign() <= 0 {
		return nil, fmt.Errorf("%w: share count must be positive", ErrInvalidAmount)
	}

	l := s.assetLock(kind, id)
	l.Lock()
	defer l.Unlock()

	off, err := s.getOffering(kind, id)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()
	if !off.WindowOpen(now) {
		return nil, fmt.Errorf("%w: %s %s", ErrWindowClosed, kind, id)
	}
	if shares.Cmp(off.RemainingShares) > 0 {
		return nil, fmt.Errorf("%w: want %s, have %s", ErrInsufficientSupply, shares, off.RemainingShares)
	}

	price := off.CurrentPrice(now)
	cost := new(big.Int).Mul(price, shares)

	inv := &ledger.Investment{
		Investor:   investor,
		Shares:     new(big.Int).Set(shares),
		AmountPaid: cost,
		Timestamp:  now,
	}
	off.RemainingShares = new(big.Int).Sub(off.RemainingShares, shares)

	if err := s.store.CommitPurchase(kind, id, off, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// DepositRevenue records revenue earned by the asset. Only the
// offering's creator may deposit. The amount is an obligation record;
// moving the actual funds is the payments layer's job.
func (s *Service) DepositRevenue(caller asset.AccountID, kind asset.Kind, id asset.AssetID, amount *big.Int) (*ledger.RevenueAccount, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: deposit must be positive", ErrInvalidAmount)
	}

	l := s.assetLock(kind, id)
	l.Lock()
	defer l.Unlock()

	off, err := s.getOffering(kind, id)
	if err != nil {
		return nil, err
	}
	if caller != off.Creator {
		return nil, fmt.Errorf("%w: only the creator may deposit revenue", ErrUnauthorized)
	}

	now := s.nowFn()
	acct, err := s.store.GetRevenue(kind, id)
	switch {
	case errors.Is(err, store.ErrRevenueNotFound) && kind == asset.Video:
		// Video revenue accounts are created lazily on first deposit.
		acct = ledger.NewRevenueAccount(now)
	case err != nil:
		return nil, s.mapStoreErr(err)
	}

	if err := acct.Deposit(amount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if err := s.store.PutRevenue(kind, id, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// ClaimRevenue pays the caller their share of the undistributed
// revenue of a video asset and returns the amount the payments layer
// now owes them. Stream revenue settles externally via SettlementPlan
// and fails here with ErrClaimUnsupported.
//
// The claim arithmetic is ledger.Claimable; see its documentation for
// the preserved division-order behavior.
func (s *Service) ClaimRevenue(caller asset.AccountID, kind asset.Kind, id asset.AssetID) (*big.Int, error) {
	if kind != asset.Video {
		return nil, fmt.Errorf("%w: %s", ErrClaimUnsupported, kind)
	}

	l := s.assetLock(kind, id)
	l.Lock()
	defer l.Unlock()

	off, err := s.getOffering(kind, id)
	if err != nil {
		return nil, err
	}
	investments, err := s.store.GetInvestments(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	acct, err := s.store.GetRevenue(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	claimantShares := ledger.SharesOf(investments, caller)
	if claimantShares.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoShares, caller)
	}

	claimable := ledger.Claimable(acct.Undistributed(), claimantShares, off.TotalShares)
	if claimable.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s owns %s of %s shares", ErrNothingToClaim, caller, claimantShares, off.TotalShares)
	}

	if err := acct.RecordDistribution(claimable, s.nowFn()); err != nil {
		return nil, err
	}
	if err := s.store.PutRevenue(kind, id, acct); err != nil {
		return nil, err
	}
	return claimable, nil
}

// SettlementPlan computes the full pro-rata payout list over the
// asset's undistributed revenue, one line per investor, proportional
// to sold shares with the remainder going to the last investor. It is
// a read-only export for the external payments component and does not
// mark anything distributed. The reads run under the per-asset lock
// so the plan never pairs a stale supply with a newer ledger.
func (s *Service) SettlementPlan(kind asset.Kind, id asset.AssetID) ([]*ledger.Payout, error) {
	l := s.assetLock(kind, id)
	l.Lock()
	defer l.Unlock()

	off, err := s.getOffering(kind, id)
	if err != nil {
		return nil, err
	}
	investments, err := s.store.GetInvestments(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	acct, err := s.store.GetRevenue(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	positions := ledger.Positions(investments)
	payouts, err := ledger.Distribute(acct.Undistributed(), positions, off.SoldShares())
	switch {
	case errors.Is(err, ledger.ErrNoPositions), errors.Is(err, ledger.ErrZeroTotalShares):
		return nil, fmt.Errorf("%w: no investors to settle", ErrNoShares)
	case errors.Is(err, ledger.ErrNothingToDistribute):
		return nil, fmt.Errorf("%w: no undistributed revenue", ErrNothingToClaim)
	case err != nil:
		return nil, err
	}
	return payouts, nil
}

// getOffering fetches an offering, mapping the store's absence error
// to the service taxonomy.
func (s *Service) getOffering(kind asset.Kind, id asset.AssetID) (*offering.Offering, error) {
	off, err := s.store.GetOffering(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return off, nil
}

// mapStoreErr folds store absence errors into ErrNotFound.
func (s *Service) mapStoreErr(err error) error {
	if errors.Is(err, store.ErrOfferingNotFound) || errors.Is(err, store.ErrRevenueNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
