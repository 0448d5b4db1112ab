package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-numkit/internal/testutil"
)

const svdTolerance = 1e-9

type svdResult struct {
	u, sigma, v []float64
}

func runSVD(t *testing.T, a []float64, r, c int) (svdResult, error) {
	t.Helper()
	k := min(r, c)
	res := svdResult{
		u:     make([]float64, r*r),
		sigma: make([]float64, r*c),
		v:     make([]float64, c*c),
	}
	ws := SVDWork[float64]{
		W:     make([]float64, r*c),
		Vals:  make([]float64, k),
		Order: make([]int, k),
	}
	err := JacobiSVD(a, r, c, res.u, res.sigma, res.v, ws)
	return res, err
}

func TestJacobiSVD_Reconstructs(t *testing.T) {
	tests := []struct {
		name string
		r, c int
		a    []float64
	}{
		{"2x2", 2, 2, []float64{3, 0, 4, 5}},
		{"3x3 symmetric", 3, 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2}},
		{"tall 4x2", 4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"wide 2x3", 2, 3, []float64{3, 2, 2, 2, 3, -2}},
		{"rank one", 3, 3, []float64{1, 2, 3, 2, 4, 6, 3, 6, 9}},
		{"zero matrix", 2, 2, []float64{0, 0, 0, 0}},
		{"4x4", 4, 4, []float64{
			4, -2, 1, 3,
			3, 6, -4, 2,
			2, 1, 8, -5,
			1, 2, 3, 7,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runSVD(t, tt.a, tt.r, tt.c)
			require.NoError(t, err)

			vt := make([]float64, tt.c*tt.c)
			Transpose(vt, res.v, tt.c, tt.c)
			us := testutil.MatMul(res.u, res.sigma, tt.r, tt.r, tt.c)
			usvt := testutil.MatMul(us, vt, tt.r, tt.c, tt.c)
			testutil.AssertMatrixInDelta(t, tt.a, usvt, tt.r, tt.c, svdTolerance)

			testutil.AssertOrthonormalColumns(t, res.u, tt.r, tt.r, svdTolerance)
			testutil.AssertOrthonormalColumns(t, res.v, tt.c, tt.c, svdTolerance)

			k := min(tt.r, tt.c)
			for i := range k {
				s := res.sigma[i*tt.c+i]
				assert.GreaterOrEqual(t, s, 0.0)
				if i+1 < k {
					assert.GreaterOrEqual(t, s, res.sigma[(i+1)*tt.c+i+1], "singular values must be sorted")
				}
			}
		})
	}
}

func TestJacobiSVD_MatchesGonum(t *testing.T) {
	a := []float64{
		4, -2, 1,
		3, 6, -4,
		2, 1, 8,
		1, 2, 3,
	}
	res, err := runSVD(t, a, 4, 3)
	require.NoError(t, err)

	var oracle mat.SVD
	require.True(t, oracle.Factorize(mat.NewDense(4, 3, a), mat.SVDNone))
	want := oracle.Values(nil)

	for i, w := range want {
		testutil.AssertRelativeError(t, w, res.sigma[i*3+i], svdTolerance)
	}
}

func TestJacobiSVD_InputUntouched(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	_, err := runSVD(t, a, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, a)
}

func TestJacobiSVD_Float32(t *testing.T) {
	a := []float32{2, 0, 1, 3}
	u := make([]float32, 4)
	sigma := make([]float32, 4)
	v := make([]float32, 4)
	ws := SVDWork[float32]{W: make([]float32, 4), Vals: make([]float32, 2), Order: make([]int, 2)}

	require.NoError(t, JacobiSVD(a, 2, 2, u, sigma, v, ws))

	// σ1·σ2 = |det A| = 6
	assert.InDelta(t, 6.0, float64(sigma[0]*sigma[3]), 1e-4)
}

func TestJacobiSVD_ExtremeScale(t *testing.T) {
	for _, s := range []float64{1e-170, 1e155} {
		a := []float64{3 * s, 0, 4 * s, 5 * s}
		res, err := runSVD(t, a, 2, 2)
		require.NoError(t, err, "scale %g", s)

		assert.InEpsilon(t, 3*math.Sqrt(5), res.sigma[0]/s, svdTolerance, "scale %g", s)
		assert.InEpsilon(t, math.Sqrt(5), res.sigma[3]/s, svdTolerance, "scale %g", s)
		testutil.AssertOrthonormalColumns(t, res.u, 2, 2, svdTolerance)
		testutil.AssertOrthonormalColumns(t, res.v, 2, 2, svdTolerance)
	}
}

func TestJacobiSVD_DisparateColumns(t *testing.T) {
	// column norms 1 and √2·1e-20 at 45°
	a := []float64{1, 1e-20, 0, 1e-20}
	res, err := runSVD(t, a, 2, 2)
	require.NoError(t, err)

	assert.InEpsilon(t, 1.0, res.sigma[0], svdTolerance)
	assert.InEpsilon(t, 1e-20, res.sigma[3], svdTolerance)
	testutil.AssertOrthonormalColumns(t, res.u, 2, 2, svdTolerance)
	testutil.AssertOrthonormalColumns(t, res.v, 2, 2, svdTolerance)
}
