// Package linalg implements the dense kernels shared by the dynamic and the
// fixed-size matrix types.
//
// Kernels operate on flat row-major slices and write into caller-provided
// outputs and workspaces, so fixed-size callers can run them on stack arrays.
// Kernels never wrap errors; the public facades add the operation tag.
package linalg

import "github.com/tphakala/go-numkit/internal/numerr"

// Precondition sentinels.
var (
	ErrDimensionMismatch = numerr.Precondition("matrix: dimension mismatch")
	ErrNotSquare         = numerr.Precondition("matrix: matrix is not square")
	ErrBadShape          = numerr.Precondition("matrix: invalid shape")
	ErrInvalidNorm       = numerr.Precondition("matrix: invalid norm")
)

// Numerical failure sentinels.
var (
	ErrSingular      = numerr.NoResult("matrix: singular matrix")
	ErrRankDeficient = numerr.NoResult("matrix: rank-deficient column")
	ErrNoConvergence = numerr.NoResult("matrix: SVD did not converge")
)

// Operation tags used by the facades when wrapping kernel errors.
const (
	OpMul       = "Mul"
	OpAdd       = "Add"
	OpSub       = "Sub"
	OpMulVec    = "MulVec"
	OpNorm      = "Norm"
	OpLU        = "LU"
	OpQR        = "QR"
	OpSVD       = "SVD"
	OpInverse   = "Inverse"
	OpDet       = "Det"
	OpSolve     = "Solve"
	OpNew       = "New"
	OpTrace     = "Trace"
	OpDot       = "Dot"
	OpFromGonum = "FromGonum"
)
