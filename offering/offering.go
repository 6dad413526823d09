// Package offering defines the share offering record for a single
// asset: the immutable sale parameters, the mutable remaining supply,
// and the per-kind terms (pricing curve, sale window, validation).
package offering

import (
	"fmt"
	"math/big"

	"github.com/castshare/libcastshare-go/asset"
	"github.com/castshare/libcastshare-go/pricing"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86_400
)

// Terms is the per-kind variant of an offering: how shares are priced,
// when they may be bought, and what parameters are acceptable. The two
// implementations are VideoTerms and StreamTerms.
type Terms interface {
	// Kind returns the asset kind these terms describe.
	Kind() asset.Kind

	// Curve returns the pricing curve for the given base price.
	Curve(base *big.Int) pricing.Curve

	// ValidateParams checks the kind-specific parameters against the
	// shared base price and the current time.
	ValidateParams(base *big.Int, now int64) error

	// WindowOpen reports whether shares may still be bought at now.
	WindowOpen(now int64) bool
}

// Offering is the sale record for one asset. Creator, TotalShares,
// BasePrice, and Terms are immutable after creation; only
// RemainingShares changes, and only through purchases.
type Offering struct {
	Creator         asset.AccountID
	TotalShares     *big.Int
	BasePrice       *big.Int
	RemainingShares *big.Int
	CreatedAt       int64 // unix seconds
	Terms           Terms
}

// New validates the shared and kind-specific parameters and returns an
// offering with the full supply remaining.
func New(creator asset.AccountID, totalShares, basePrice *big.Int, terms Terms, now int64) (*Offering, error) {
	if terms == nil {
		return nil, fmt.Errorf("%w: terms required", ErrInvalidParameter)
	}
	if totalShares == nil || totalShares.Sign() <= 0 {
		return nil, fmt.Errorf("%w: total shares must be positive", ErrInvalidParameter)
	}
	if basePrice == nil || basePrice.Sign() <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrInvalidParameter)
	}
	if err := terms.ValidateParams(basePrice, now); err != nil {
		return nil, err
	}

	return &Offering{
		Creator:         creator,
		TotalShares:     new(big.Int).Set(totalShares),
		BasePrice:       new(big.Int).Set(basePrice),
		RemainingShares: new(big.Int).Set(totalShares),
		CreatedAt:       now,
		Terms:           terms,
	}, nil
}

// Kind returns the asset kind of the offering.
func (o *Offering) Kind() asset.Kind {
	return o.Terms.Kind()
}

// CurrentPrice evaluates the pricing curve at now. The result is a
// quote only; it is never reserved for a later purchase.
func (o *Offering) CurrentPrice(now int64) *big.Int {
	return o.Terms.Curve(o.BasePrice).Price(now)
}

// WindowOpen reports whether shares may still be bought at now.
func (o *Offering) WindowOpen(now int64) bool {
	return o.Terms.WindowOpen(now)
}

// SoldShares returns TotalShares - RemainingShares.
func (o *Offering) SoldShares() *big.Int {
	return new(big.Int).Sub(o.TotalShares, o.RemainingShares)
}

// VideoTerms prices video shares on a step curve: the price rises by
// PriceIncrement every full hour between StartDate and the moment of
// purchase. Sales close at SaleEndDate (inclusive).
type VideoTerms struct {
	StartDate      int64 // unix seconds, sale and pricing origin
	SaleEndDate    int64 // unix seconds, last second a purchase is accepted
	PriceIncrement *big.Int
}

// NewVideoTerms derives video terms from a sale duration in days,
// anchored at now.
func NewVideoTerms(priceIncrement *big.Int, saleDurationDays uint32, now int64) *VideoTerms {
	return &VideoTerms{
		StartDate:      now,
		SaleEndDate:    now + int64(saleDurationDays)*secondsPerDay,
		PriceIncrement: priceIncrement,
	}
}

// Kind returns asset.Video.
func (t *VideoTerms) Kind() asset.Kind { return asset.Video }

// Curve returns the hourly step curve for the given base price.
func (t *VideoTerms) Curve(base *big.Int) pricing.Curve {
	return &pricing.StepCurve{
		Base:      base,
		Increment: t.PriceIncrement,
		StartDate: t.StartDate,
	}
}

// ValidateParams rejects a negative price increment.
func (t *VideoTerms) ValidateParams(base *big.Int, now int64) error {
	if t.PriceIncrement == nil || t.PriceIncrement.Sign() < 0 {
		return fmt.Errorf("%w: price increment must not be negative", ErrInvalidParameter)
	}
	return nil
}

// WindowOpen reports whether now is on or before the sale end date.
func (t *VideoTerms) WindowOpen(now int64) bool {
	return now <= t.SaleEndDate
}

// StreamTerms prices stream shares on a three-phase ramp: flat at the
// base price until PreLiveStart, linear up to MaxPrice until
// StreamStart, then flat at MaxPrice. Sales close the instant the
// stream goes live.
type StreamTerms struct {
	PreLiveStart int64 // unix seconds, start of the ramp
	StreamStart  int64 // unix seconds, stream goes live
	MaxPrice     *big.Int
}

// NewStreamTerms derives stream terms from the stream start timestamp
// and a pre-live duration in hours.
func NewStreamTerms(maxPrice *big.Int, preLiveDurationHours uint32, streamStart int64) *StreamTerms {
	return &StreamTerms{
		PreLiveStart: streamStart - int64(preLiveDurationHours)*secondsPerHour,
		StreamStart:  streamStart,
		MaxPrice:     maxPrice,
	}
}

// Kind returns asset.Stream.
func (t *StreamTerms) Kind() asset.Kind { return asset.Stream }

// Curve returns the three-phase ramp curve for the given base price.
func (t *StreamTerms) Curve(base *big.Int) pricing.Curve {
	return &pricing.RampCurve{
		Base:         base,
		Max:          t.MaxPrice,
		PreLiveStart: t.PreLiveStart,
		StreamStart:  t.StreamStart,
	}
}

// ValidateParams rejects a max price at or below the base price and a
// pre-live window that does not start strictly in the future.
func (t *StreamTerms) ValidateParams(base *big.Int, now int64) error {
	if t.MaxPrice == nil || t.MaxPrice.Cmp(base) <= 0 {
		return fmt.Errorf("%w: max price must exceed base price", ErrInvalidParameter)
	}
	if t.PreLiveStart <= now {
		return fmt.Errorf("%w: pre-live period must be in the future", ErrInvalidParameter)
	}
	return nil
}

// WindowOpen reports whether now is strictly before the stream start.
func (t *StreamTerms) WindowOpen(now int64) bool {
	return now < t.StreamStart
}

// Status returns the derived stream phase at now. Transitions are
// driven solely by the clock and are monotone: UPCOMING, then
// PRE_LIVE, then LIVE. Nothing is persisted.
func (t *StreamTerms) Status(now int64) StreamStatus {
	switch {
	case now < t.PreLiveStart:
		return StatusUpcoming
	case now < t.StreamStart:
		return StatusPreLive
	default:
		return StatusLive
	}
}

// StreamStatus is the derived lifecycle phase of a stream offering.
type StreamStatus uint8

const (
	// StatusUpcoming means the pre-live window has not opened yet.
	StatusUpcoming StreamStatus = iota

	// StatusPreLive means the pre-live investment window is open.
	StatusPreLive

	// StatusLive means the stream has started.
	StatusLive
)

// String returns the wire name of the status.
func (s StreamStatus) String() string {
	switch s {
	case StatusUpcoming:
		return "UPCOMING"
	case StatusPreLive:
		return "PRE_LIVE"
	case StatusLive:
		return "LIVE"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}
