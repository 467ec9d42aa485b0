package impact

import "errors"

var (
	// ErrInvalidIdentifier means a material or energy source outside the catalog.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidAmount means a negative, non-finite or out-of-range amount.
	ErrInvalidAmount = errors.New("invalid amount")
)
