package fft

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-numkit/internal/testutil"
)

func TestPlan_MatchesTransform(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	for n := 1; n <= 512; n <<= 1 {
		p, err := NewPlan[complex128](n)
		require.NoError(t, err)
		assert.Equal(t, n, p.Len())

		x := randomComplex(rng, n)
		want, err := FFT(x)
		require.NoError(t, err)

		got := append([]complex128(nil), x...)
		require.NoError(t, p.Forward(got))
		testutil.AssertComplexInDelta(t, want, got, 1e-9)

		require.NoError(t, p.Inverse(got))
		testutil.AssertComplexInDelta(t, x, got, 1e-10)
	}
}

func TestPlan_Complex64(t *testing.T) {
	p, err := NewPlan[complex64](4)
	require.NoError(t, err)

	x := []complex64{1, 1, 1, 1}
	require.NoError(t, p.Forward(x))
	assert.InDelta(t, 4.0, real(x[0]), 1e-6)
	assert.InDelta(t, 0.0, real(x[1]), 1e-6)
}

func TestPlan_Errors(t *testing.T) {
	_, err := NewPlan[complex128](0)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = NewPlan[complex128](12)
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)

	p, err := NewPlan[complex128](8)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Forward(make([]complex128, 4)), ErrLengthMismatch)
}

func TestPlan_DoesNotAllocate(t *testing.T) {
	p, err := NewPlan[complex128](256)
	require.NoError(t, err)
	x := make([]complex128, 256)
	allocs := testing.AllocsPerRun(50, func() {
		_ = p.Forward(x)
	})
	assert.Zero(t, allocs)
}
