package asset

import "errors"

var (
	// ErrInvalidAssetID indicates a malformed asset identifier.
	ErrInvalidAssetID = errors.New("asset: invalid asset id")

	// ErrInvalidAccount indicates a malformed account identifier.
	ErrInvalidAccount = errors.New("asset: invalid account id")

	// ErrInvalidKind indicates an unknown asset kind.
	ErrInvalidKind = errors.New("asset: invalid asset kind")
)
