// Package simdops provides generic SIMD operations for float32 and float64 types.
// Filters, convolutions and reductions are written once against Ops[F] and
// dispatch to the type-specific kernels of github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// ConvolveValid computes dst[i] = Σ signal[i+j]·kernel[j] for
	// i in [0, len(signal)-len(kernel)].
	ConvolveValid func(dst, signal, kernel []F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		ConvolveValid:    f32.ConvolveValid,
		Sum:              f32.Sum,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		ConvolveValid:    f64.ConvolveValid,
		Sum:              f64.Sum,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at construction time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}

// Epsilon returns the machine epsilon of F.
func Epsilon[F Float]() F {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return F(epsilon32)
	}
	return F(epsilon64)
}

// PivotTolerance returns the smallest pivot magnitude accepted by the
// elimination kernels for F: 1e-12 for float64 and 1e-6 for float32.
func PivotTolerance[F Float]() F {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return F(pivotTolerance32)
	}
	return F(pivotTolerance64)
}

// RotationTolerance returns the relative off-diagonal threshold below which
// the Jacobi SVD treats a column pair as orthogonal: 1e-9 for float64 and
// 1e-5 for float32.
func RotationTolerance[F Float]() F {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return F(rotationTolerance32)
	}
	return F(rotationTolerance64)
}

const (
	epsilon32 = 1.1920928955078125e-07
	epsilon64 = 2.220446049250313e-16

	pivotTolerance32 = 1e-6
	pivotTolerance64 = 1e-12

	rotationTolerance32 = 1e-5
	rotationTolerance64 = 1e-9
)

// Info describes the SIMD instruction set selected at startup.
func Info() string {
	return cpu.Info()
}
