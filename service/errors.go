package service

import "errors"

// Every operation fails with exactly one of these, or with
// offering.ErrInvalidParameter for rejected creation arguments.
var (
	// ErrInvalidAmount indicates a zero or negative share count or
	// revenue amount.
	ErrInvalidAmount = errors.New("service: invalid amount")

	// ErrOfferingExists indicates an offering already exists for the
	// asset id. Offerings are never silently recreated.
	ErrOfferingExists = errors.New("service: offering already exists")

	// ErrNotFound indicates no offering, investment ledger, or
	// revenue account exists for the asset id.
	ErrNotFound = errors.New("service: not found")

	// ErrUnauthorized indicates the caller is not the offering
	// creator.
	ErrUnauthorized = errors.New("service: caller is not the creator")

	// ErrWindowClosed indicates a purchase after the sale window
	// closed.
	ErrWindowClosed = errors.New("service: sale window closed")

	// ErrInsufficientSupply indicates a purchase exceeding the
	// remaining shares.
	ErrInsufficientSupply = errors.New("service: not enough shares remaining")

	// ErrNoShares indicates a claim by an account owning no shares.
	ErrNoShares = errors.New("service: no shares owned")

	// ErrNothingToClaim indicates a claim that computes to zero.
	ErrNothingToClaim = errors.New("service: no revenue to claim")

	// ErrClaimUnsupported indicates a revenue claim on an asset kind
	// that settles externally instead.
	ErrClaimUnsupported = errors.New("service: revenue claims not supported for this asset kind")
)
