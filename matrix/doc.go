// Package matrix provides dense row-major matrices with runtime shape over
// float32 and float64.
//
// Algebra produces new matrices and reports shape errors; decompositions
// (LU with partial pivoting, Householder QR, one-sided Jacobi SVD, inverse)
// return a result and an error. Failure never mutates the receiver.
//
// Errors fall in two categories that can be tested with errors.Is:
//
//	ErrPrecondition  the inputs violate a documented requirement
//	ErrNoResult      the inputs are valid but numerically degenerate
//
// Element access is bounds-checked only when built with -tags numdebug.
//
// For small matrices whose shape is known at compile time, see package
// matrix/fixed, which shares the decomposition kernels and allocates nothing.
package matrix
