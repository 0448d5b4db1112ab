package matrix

import (
	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
)

// Error categories.
var (
	ErrPrecondition = numerr.ErrPrecondition
	ErrNoResult     = numerr.ErrNoResult
)

// Precondition errors.
var (
	ErrDimensionMismatch = linalg.ErrDimensionMismatch
	ErrNotSquare         = linalg.ErrNotSquare
	ErrBadShape          = linalg.ErrBadShape
	ErrInvalidNorm       = linalg.ErrInvalidNorm
)

// Numerical failures.
var (
	ErrSingular      = linalg.ErrSingular
	ErrRankDeficient = linalg.ErrRankDeficient
	ErrNoConvergence = linalg.ErrNoConvergence
)
