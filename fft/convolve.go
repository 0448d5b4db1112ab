package fft

import (
	"github.com/tphakala/simd/c128"

	"github.com/tphakala/go-numkit/internal/simdops"
)

// Convolution strategy thresholds.
const (
	// Below this operand length the direct SIMD convolution is faster.
	directMaxLen = 64

	// When the longer operand is at least this many times the shorter one,
	// overlap-save blocks beat a single transform of the padded pair.
	blockRatio = 8
)

// Convolve returns the linear convolution of a and b, of length
// len(a)+len(b)−1, computed with one forward transform per operand and an
// inverse transform of the spectral product.
func Convolve[F Float](a, b []F) ([]F, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	outLen := len(a) + len(b) - 1
	n := NextPowerOfTwo(outLen)

	fa := widen(a, n)
	fb := widen(b, n)
	if err := Transform(fa, false); err != nil {
		return nil, err
	}
	if err := Transform(fb, false); err != nil {
		return nil, err
	}
	c128.Mul(fa, fa, fb)
	if err := Transform(fa, true); err != nil {
		return nil, err
	}

	out := make([]F, outLen)
	for i := range out {
		out[i] = F(real(fa[i]))
	}
	return out, nil
}

// ConvolveDirect returns the linear convolution of a and b by direct
// summation. It is exact up to rounding and O(len(a)·len(b)).
func ConvolveDirect[F Float](a, b []F) ([]F, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	pad := len(b) - 1
	padded := make([]F, len(a)+2*pad)
	copy(padded[pad:], a)

	reversed := make([]F, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}

	out := make([]F, len(a)+pad)
	simdops.For[F]().ConvolveValid(out, padded, reversed)
	return out, nil
}

// ConvolveAuto picks direct summation for short operands, overlap-save
// blocks when one operand is much longer than the other, and Convolve
// otherwise.
func ConvolveAuto[F Float](a, b []F) ([]F, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	switch {
	case len(short) < directMaxLen:
		return ConvolveDirect(a, b)
	case len(long) >= blockRatio*len(short):
		bc, err := NewBlockConvolver(toFloat64(short))
		if err != nil {
			return nil, err
		}
		full := bc.Convolve(toFloat64(long))
		out := make([]F, len(full))
		for i, v := range full {
			out[i] = F(v)
		}
		return out, nil
	default:
		return Convolve(a, b)
	}
}

func widen[F Float](x []F, n int) []complex128 {
	out := make([]complex128, n)
	for i, v := range x {
		out[i] = complex(float64(v), 0)
	}
	return out
}

func toFloat64[F Float](x []F) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
