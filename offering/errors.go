package offering

import "errors"

var (
	// ErrInvalidParameter indicates a rejected constructor argument.
	ErrInvalidParameter = errors.New("offering: invalid parameter")
)
