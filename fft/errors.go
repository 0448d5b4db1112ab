package fft

import "github.com/tphakala/go-numkit/internal/numerr"

// ErrPrecondition is the category of every error returned by this package.
var ErrPrecondition = numerr.ErrPrecondition

// Errors returned for invalid input.
var (
	ErrNotPowerOfTwo  = numerr.Precondition("fft: length is not a power of two")
	ErrEmptyInput     = numerr.Precondition("fft: empty input")
	ErrLengthMismatch = numerr.Precondition("fft: length does not match plan")
)
