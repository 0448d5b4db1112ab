package filter

import "github.com/tphakala/go-numkit/internal/numerr"

// ErrPrecondition is the category of every error returned by this package.
var ErrPrecondition = numerr.ErrPrecondition

// Errors returned by constructors and designs.
var (
	// ErrInvalidDenominator is returned for an empty denominator or a[0] = 0.
	ErrInvalidDenominator = numerr.Precondition("filter: denominator must be non-empty with a[0] != 0")

	// ErrSizeMismatch is returned when a buffer has the wrong length.
	ErrSizeMismatch = numerr.Precondition("filter: size mismatch")

	// ErrInvalidParameter is returned by designs for out-of-range parameters.
	ErrInvalidParameter = numerr.Precondition("filter: invalid parameter")
)
