// Package pricing implements the time-dependent share pricing curves.
//
// Both curves are pure functions of stored offering parameters and the
// host clock. A price returned here is never reserved: two sequential
// purchases may each observe a different (both valid) price.
package pricing

import "math/big"

const secondsPerHour = 3600

// Curve maps the current time to a per-share price in minor units.
type Curve interface {
	// Price returns the unit price at time now (unix seconds).
	Price(now int64) *big.Int
}

// StepCurve prices video shares: the base price plus a fixed increment
// for every full hour elapsed since the sale started. Non-decreasing,
// constant within each hour.
type StepCurve struct {
	Base      *big.Int // price at StartDate
	Increment *big.Int // added per elapsed hour, >= 0
	StartDate int64    // unix seconds
}

// Price returns base + increment * floor(max(0, now-start) / 3600).
func (c *StepCurve) Price(now int64) *big.Int {
	elapsed := now - c.StartDate
	if elapsed < 0 {
		elapsed = 0
	}
	hours := elapsed / secondsPerHour

	price := new(big.Int).Mul(c.Increment, big.NewInt(hours))
	return price.Add(price, c.Base)
}

// RampCurve prices stream shares across three phases: flat at the base
// price before the pre-live window, a linear ramp to the max price
// during pre-live, then flat at the max price once the stream is live.
type RampCurve struct {
	Base         *big.Int // price before PreLiveStart
	Max          *big.Int // price from StreamStart on, > Base
	PreLiveStart int64    // unix seconds, < StreamStart
	StreamStart  int64    // unix seconds
}

// Price returns the phase price at time now. The ramp is exact integer
// arithmetic: base + (max-base)*(now-preLiveStart)/(streamStart-preLiveStart)
// with truncating division, so every reimplementation agrees bit-for-bit.
func (c *RampCurve) Price(now int64) *big.Int {
	if now < c.PreLiveStart {
		return new(big.Int).Set(c.Base)
	}
	if now >= c.StreamStart {
		return new(big.Int).Set(c.Max)
	}

	window := c.StreamStart - c.PreLiveStart
	elapsed := now - c.PreLiveStart

	ramp := new(big.Int).Sub(c.Max, c.Base)
	ramp.Mul(ramp, big.NewInt(elapsed))
	ramp.Quo(ramp, big.NewInt(window))
	return ramp.Add(ramp, c.Base)
}
