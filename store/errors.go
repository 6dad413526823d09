package store

import "errors"

var (
	// ErrNilParam indicates a required parameter was nil.
	ErrNilParam = errors.New("store: nil parameter")

	// ErrDuplicateOffering indicates an offering already exists for
	// the asset id.
	ErrDuplicateOffering = errors.New("store: offering already exists")

	// ErrOfferingNotFound indicates no offering exists for the asset id.
	ErrOfferingNotFound = errors.New("store: offering not found")

	// ErrRevenueNotFound indicates no revenue account exists for the
	// asset id.
	ErrRevenueNotFound = errors.New("store: revenue account not found")
)
