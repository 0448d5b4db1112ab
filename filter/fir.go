package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-numkit/internal/delay"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// Float is the sample type constraint: float32 or float64.
type Float = simdops.Float

// Filterer is the streaming interface shared by FIR, IIR and Cascade.
type Filterer[F Float] interface {
	// Filter consumes one input sample and returns one output sample.
	Filter(x F) F
	// Process filters a block, returning a new slice.
	Process(x []F) []F
	// Reset zeroes the internal state.
	Reset()
}

// FIR is a finite impulse response filter y[n] = Σ b[k]·x[n−k].
//
// The delay line stores the last N+1 inputs oldest first and the taps are
// kept reversed, so each output is one SIMD dot product over contiguous
// memory. Filter does not allocate.
type FIR[F Float] struct {
	coeffs []F // b[0..N]
	rev    []F // rev[j] = b[N−j], aligned with the delay line window
	line   *delay.Line[F]
	dot    func(a, b []F) F
}

// NewFIR creates a FIR filter with a copy of coeffs. The state is zeroed.
// An empty coefficient vector yields a filter whose output is always 0.
func NewFIR[F Float](coeffs []F) *FIR[F] {
	f := &FIR[F]{dot: simdops.For[F]().DotProductUnsafe}
	f.load(coeffs)
	return f
}

func (f *FIR[F]) load(coeffs []F) {
	n := len(coeffs)
	f.coeffs = make([]F, n)
	copy(f.coeffs, coeffs)
	f.rev = make([]F, n)
	for j := range n {
		f.rev[j] = coeffs[n-1-j]
	}
	f.line = delay.NewLine[F](n)
}

// Filter pushes x into the delay line and returns the next output sample.
func (f *FIR[F]) Filter(x F) F {
	if len(f.rev) == 0 {
		return 0
	}
	f.line.Push(x)
	return f.dot(f.rev, f.line.Window())
}

// Process filters x sample by sample and returns the outputs in a new slice.
// The state carries over between calls.
func (f *FIR[F]) Process(x []F) []F {
	out := make([]F, len(x))
	for i, v := range x {
		out[i] = f.Filter(v)
	}
	return out
}

// ProcessTo filters src into dst, which must have the same length.
func (f *FIR[F]) ProcessTo(dst, src []F) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src has %d", ErrSizeMismatch, len(dst), len(src))
	}
	for i, v := range src {
		dst[i] = f.Filter(v)
	}
	return nil
}

// Reset zeroes the delay line.
func (f *FIR[F]) Reset() {
	f.line.Reset()
}

// SetInitialConditions loads the delay line, where state[k] is the input
// seen k samples ago (state[0] is the most recent). len(state) must equal Len.
func (f *FIR[F]) SetInitialConditions(state []F) error {
	if len(state) != len(f.coeffs) {
		return fmt.Errorf("%w: state has %d samples, filter has %d taps", ErrSizeMismatch, len(state), len(f.coeffs))
	}
	f.line.Fill(state)
	return nil
}

// SetCoefficients replaces the taps. The delay line is resized and cleared.
func (f *FIR[F]) SetCoefficients(coeffs []F) {
	f.load(coeffs)
}

// Coefficients returns a copy of the taps b[0..N].
func (f *FIR[F]) Coefficients() []F {
	out := make([]F, len(f.coeffs))
	copy(out, f.coeffs)
	return out
}

// Len returns the number of taps.
func (f *FIR[F]) Len() int {
	return len(f.coeffs)
}

// Order returns N, the number of taps minus one (0 for an empty filter).
func (f *FIR[F]) Order() int {
	return max(len(f.coeffs)-1, 0)
}

// FrequencyResponse evaluates H(e^jω) = Σ b[k]·e^(−jωk) at freq Hz for
// sample rate fs. An empty filter has response 0.
func (f *FIR[F]) FrequencyResponse(freq, fs float64) complex128 {
	return polyResponse(f.coeffs, omega(freq, fs))
}

// GroupDelay returns N/2 samples, the delay of a linear-phase FIR.
func (f *FIR[F]) GroupDelay() float64 {
	return float64(f.Order()) / halfOrder
}

func omega(freq, fs float64) float64 {
	return twoPi * freq / fs
}

// polyResponse evaluates Σ c[k]·e^(−jωk).
func polyResponse[F Float](c []F, w float64) complex128 {
	var h complex128
	for k, v := range c {
		h += complex(float64(v), 0) * cmplx.Rect(1, -w*float64(k))
	}
	return h
}

// isFinite reports whether every element of c is finite.
func isFinite[F Float](c []F) bool {
	for _, v := range c {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}
