package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func gonumSingularValues(t *testing.T, a *Dense[float64]) []float64 {
	t.Helper()
	var svd mat.SVD
	require.True(t, svd.Factorize(a.ToGonum(), mat.SVDNone))
	return svd.Values(nil)
}

func TestGonumRoundTrip(t *testing.T) {
	a := mustFromRows(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	g := a.ToGonum()
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, g.At(1, 2))

	back, err := FromGonum[float32](g.T())
	require.NoError(t, err)
	assert.True(t, back.Equal(a.Transpose()))

	_, err = FromGonum[float64](&mat.Dense{})
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestInverse_MatchesGonum(t *testing.T) {
	a := mustFromRows(t, [][]float64{{4, -2, 1}, {3, 6, -4}, {2, 1, 8}})

	inv, err := a.Inverse()
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(a.ToGonum()))

	got := inv.ToGonum()
	assert.True(t, mat.EqualApprox(got, &want, 1e-12))
}
