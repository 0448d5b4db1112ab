package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_Float64(t *testing.T) {
	ops := For[float64]()
	require.NotNil(t, ops)

	a := []float64{1, 2, 3, 4}
	b := []float64{0.5, 0.5, 0.5, 0.5}
	assert.InDelta(t, 5.0, ops.DotProductUnsafe(a, b), 1e-12)
	assert.InDelta(t, 10.0, ops.Sum(a), 1e-12)

	dst := make([]float64, len(a))
	ops.Scale(dst, a, 2)
	assert.Equal(t, []float64{2, 4, 6, 8}, dst)
}

func TestFor_Float32(t *testing.T) {
	ops := For[float32]()
	require.NotNil(t, ops)

	a := []float32{1, 2, 3}
	assert.InDelta(t, 14.0, float64(ops.DotProductUnsafe(a, a)), 1e-5)
}

func TestConvolveValid_MatchesDefinition(t *testing.T) {
	ops := Float64Ops()
	signal := []float64{1, 2, 3, 4, 5}
	kernel := []float64{1, -1}
	dst := make([]float64, len(signal)-len(kernel)+1)

	ops.ConvolveValid(dst, signal, kernel)

	// dst[i] = signal[i] - signal[i+1]
	for i := range dst {
		assert.InDelta(t, signal[i]-signal[i+1], dst[i], 1e-12, "dst[%d]", i)
	}
}

func TestTolerances(t *testing.T) {
	assert.InDelta(t, 1e-12, PivotTolerance[float64](), 0)
	assert.InDelta(t, 1e-6, float64(PivotTolerance[float32]()), 1e-12)
	assert.InDelta(t, 1e-9, RotationTolerance[float64](), 0)
	assert.Greater(t, float64(RotationTolerance[float32]()), 10*float64(Epsilon[float32]()))
	assert.Less(t, Epsilon[float64](), 1e-15)
	assert.Greater(t, float64(Epsilon[float32]()), 1e-8)
}

func TestInfo(t *testing.T) {
	assert.NotEmpty(t, Info())
}
