package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-numkit/internal/testutil"
)

const luTolerance = 1e-12

// permuteRows returns the rows of a (r×c) in the order given by perm.
func permuteRows(a []float64, r, c int, perm []int) []float64 {
	out := make([]float64, r*c)
	for i := range r {
		copy(out[i*c:(i+1)*c], a[perm[i]*c:(perm[i]+1)*c])
	}
	return out
}

func TestLUInPlace_Reconstructs(t *testing.T) {
	tests := []struct {
		name string
		r, c int
		a    []float64
	}{
		{"3x3 pivoting", 3, 3, []float64{2, 1, 1, 4, 3, 3, 8, 7, 9}},
		{"2x2 zero leading", 2, 2, []float64{0, 1, 1, 0}},
		{"tall 4x2", 4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 9}},
		{"wide 2x4", 2, 4, []float64{1, 2, 3, 4, 2, 1, 0, 5}},
		{"4x4", 4, 4, []float64{
			4, -2, 1, 3,
			3, 6, -4, 2,
			2, 1, 8, -5,
			1, 2, 3, 7,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := min(tt.r, tt.c)
			packed := append([]float64(nil), tt.a...)
			perm := make([]int, tt.r)

			_, err := LUInPlace(packed, tt.r, tt.c, perm)
			require.NoError(t, err)

			l := make([]float64, tt.r*k)
			u := make([]float64, k*tt.c)
			SplitLU(packed, tt.r, tt.c, l, k, u, k)

			for i := range k {
				assert.Equal(t, 1.0, l[i*k+i], "L must have unit diagonal")
				assert.Greater(t, Abs(u[i*tt.c+i]), 0.0, "U[%d,%d] must be non-zero", i, i)
				for j := range i {
					assert.Zero(t, u[i*tt.c+j], "U must be upper trapezoidal")
				}
			}

			lu := testutil.MatMul(l, u, tt.r, k, tt.c)
			testutil.AssertMatrixInDelta(t, permuteRows(tt.a, tt.r, tt.c, perm), lu, tt.r, tt.c, luTolerance)
		})
	}
}

func TestLUInPlace_FirstPivotIsLargest(t *testing.T) {
	a := []float64{2, 1, 1, 4, 3, 3, 8, 7, 9}
	perm := make([]int, 3)
	_, err := LUInPlace(a, 3, 3, perm)
	require.NoError(t, err)
	assert.Equal(t, 2, perm[0])
	assert.ElementsMatch(t, []int{0, 1, 2}, perm)
}

func TestLUInPlace_Singular(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
	}{
		{"zero matrix", []float64{0, 0, 0, 0}},
		{"dependent rows", []float64{1, 2, 2, 4}},
		{"below tolerance", []float64{1e-13, 0, 0, 1e-13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := make([]int, 2)
			_, err := LUInPlace(append([]float64(nil), tt.a...), 2, 2, perm)
			assert.ErrorIs(t, err, ErrSingular)
		})
	}
}

func TestLUInPlace_SquareFixedLayout(t *testing.T) {
	// 3×2 with a square L, as the fixed facade requests it
	a := []float64{1, 2, 3, 4, 5, 6}
	packed := append([]float64(nil), a...)
	perm := make([]int, 3)
	_, err := LUInPlace(packed, 3, 2, perm)
	require.NoError(t, err)

	l := make([]float64, 9)
	u := make([]float64, 6)
	SplitLU(packed, 3, 2, l, 3, u, 3)

	assert.Equal(t, 1.0, l[8], "trailing identity column")
	assert.Equal(t, []float64{0, 0}, u[4:6], "padding row of U")
	testutil.AssertMatrixInDelta(t, permuteRows(a, 3, 2, perm), testutil.MatMul(l, u, 3, 3, 2), 3, 2, luTolerance)
}

func TestInverseLU(t *testing.T) {
	a := []float64{4, 7, 2, 6}
	packed := append([]float64(nil), a...)
	perm := make([]int, 2)
	_, err := LUInPlace(packed, 2, 2, perm)
	require.NoError(t, err)

	inv := make([]float64, 4)
	InverseLU(packed, 2, perm, inv, make([]float64, 2), make([]float64, 2))

	testutil.AssertMatrixInDelta(t, []float64{0.6, -0.7, -0.2, 0.4}, inv, 2, 2, 1e-12)
}

func TestLUSolve(t *testing.T) {
	a := []float64{
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	}
	packed := append([]float64(nil), a...)
	perm := make([]int, 3)
	_, err := LUInPlace(packed, 3, 3, perm)
	require.NoError(t, err)

	x := make([]float64, 3)
	LUSolve(packed, 3, perm, []float64{8, -11, -3}, x, make([]float64, 3))

	testutil.AssertSliceInDelta(t, []float64{2, 3, -1}, x, 1e-12)
}

func TestDetLU(t *testing.T) {
	tests := []struct {
		name string
		n    int
		a    []float64
		want float64
	}{
		{"2x2", 2, []float64{4, 7, 2, 6}, 10},
		{"permutation", 2, []float64{0, 1, 1, 0}, -1},
		{"3x3", 3, []float64{2, 1, 1, 4, 3, 3, 8, 7, 9}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := append([]float64(nil), tt.a...)
			perm := make([]int, tt.n)
			swaps, err := LUInPlace(packed, tt.n, tt.n, perm)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, DetLU(packed, tt.n, swaps), 1e-12)
		})
	}
}
