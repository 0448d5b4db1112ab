// Package testutil provides reusable test helper functions for the numeric packages.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	MatrixTolerance  = 1e-9
	Float32Tolerance = 1e-4
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertAntisymmetric verifies that s[i] == -s[n-1-i].
func AssertAntisymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], -s[j], tolerance,
			"slice not antisymmetric at i=%d: s[%d]=%f, s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertCenterIsMax verifies that the center element is the maximum value.
func AssertCenterIsMax(t *testing.T, s []float64) bool {
	t.Helper()
	if len(s) == 0 {
		return true
	}
	centerIdx := len(s) / halfDivisor
	centerVal := s[centerIdx]
	for i, v := range s {
		if v > centerVal {
			return assert.Fail(t, "center is not maximum",
				"s[%d]=%f > center s[%d]=%f", i, v, centerIdx, centerVal)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertSliceInDelta verifies element-wise closeness of two float64 slices.
func AssertSliceInDelta(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance, "index %d", i) {
			return false
		}
	}
	return true
}

// AssertComplexInDelta verifies element-wise closeness of two complex slices.
func AssertComplexInDelta(t *testing.T, expected, actual []complex128, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(expected[i] - actual[i]); d > tolerance {
			return assert.Fail(t, "complex mismatch",
				"index %d: expected %v, got %v (|diff|=%e)", i, expected[i], actual[i], d)
		}
	}
	return true
}

// AssertMatrixInDelta verifies that two row-major rows×cols matrices agree
// element-wise within tolerance.
func AssertMatrixInDelta(t *testing.T, expected, actual []float64, rows, cols int, tolerance float64) bool {
	t.Helper()
	for i := range rows {
		for j := range cols {
			e, a := expected[i*cols+j], actual[i*cols+j]
			if math.Abs(e-a) > tolerance {
				return assert.Fail(t, "matrix mismatch",
					"(%d,%d): expected %g, got %g", i, j, e, a)
			}
		}
	}
	return true
}

// AssertOrthonormalColumns verifies QᵀQ = I for a row-major rows×cols matrix.
func AssertOrthonormalColumns(t *testing.T, q []float64, rows, cols int, tolerance float64) bool {
	t.Helper()
	for a := range cols {
		for b := range cols {
			var dot float64
			for i := range rows {
				dot += q[i*cols+a] * q[i*cols+b]
			}
			want := 0.0
			if a == b {
				want = 1
			}
			if math.Abs(dot-want) > tolerance {
				return assert.Fail(t, "columns not orthonormal",
					"<q%d, q%d> = %g, want %g", a, b, dot, want)
			}
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// MatMul multiplies row-major matrices a (r×k) and b (k×c) with a plain
// triple loop. It is the reference product used to check decompositions.
func MatMul(a, b []float64, r, k, c int) []float64 {
	out := make([]float64, r*c)
	for i := range r {
		for p := range k {
			aip := a[i*k+p]
			for j := range c {
				out[i*c+j] += aip * b[p*c+j]
			}
		}
	}
	return out
}

// DirectConvolve computes the full linear convolution of a and b by definition.
func DirectConvolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}
