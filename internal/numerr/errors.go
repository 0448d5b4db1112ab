// Package numerr holds the error categories shared by the matrix, fft and
// filter packages.
//
// Every sentinel exported by those packages wraps exactly one category, so
// callers can branch on the category with errors.Is(err, ErrPrecondition)
// or on the precise cause with errors.Is(err, matrix.ErrSingular).
package numerr

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a caller error: a wrong shape, length or parameter.
	ErrPrecondition = errors.New("precondition violated")

	// ErrNoResult marks a numerical failure on valid input: a singular pivot,
	// a rank-deficient column or an iteration cap. The caller decides whether
	// to perturb, switch algorithm or surface it.
	ErrNoResult = errors.New("no result")
)

// kindError is a sentinel with its own message that still matches its category.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Precondition returns a new sentinel in the ErrPrecondition category.
func Precondition(msg string) error {
	return &kindError{msg: msg, kind: ErrPrecondition}
}

// NoResult returns a new sentinel in the ErrNoResult category.
func NoResult(msg string) error {
	return &kindError{msg: msg, kind: ErrNoResult}
}

// Op wraps err with an operation tag, giving "Op: cause".
// err must be non-nil.
func Op(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
