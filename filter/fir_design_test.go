package filter

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-numkit/internal/testutil"
)

const (
	designTolerance = 1e-12

	testOrder      = 64
	testBandLow    = 100.0
	testBandHigh   = 200.0
	testAttenuDB   = 80.0
	testTransition = 50.0
)

func TestMovingAverage(t *testing.T) {
	got, err := MovingAverage[float64](4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, got)

	_, err = MovingAverage[float64](0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestLowPass_Taps(t *testing.T) {
	// fc = fs/4 gives ωc = π/2.
	got, err := LowPass[float64](2, 250, testSampleRate)
	require.NoError(t, err)
	testutil.AssertSliceInDelta(t, []float64{1 / math.Pi, 0.5, 1 / math.Pi}, got, designTolerance)
}

func TestLowPass_Symmetric(t *testing.T) {
	for _, order := range []int{1, 2, 7, 32, 63} {
		got, err := LowPass[float64](order, testCutoff, testSampleRate)
		require.NoError(t, err)
		assert.Len(t, got, order+1)
		testutil.AssertSymmetric(t, got, designTolerance)
	}
}

func TestLowPass_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		order int
		fc    float64
		fs    float64
	}{
		{"zero order", 0, testCutoff, testSampleRate},
		{"zero cutoff", 4, 0, testSampleRate},
		{"cutoff at nyquist", 4, 500, testSampleRate},
		{"negative rate", 4, testCutoff, -1},
		{"NaN cutoff", 4, math.NaN(), testSampleRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LowPass[float64](tt.order, tt.fc, tt.fs)
			require.ErrorIs(t, err, ErrInvalidParameter)
			assert.ErrorIs(t, err, ErrPrecondition)
		})
	}
}

func TestHighPass_SpectralInversion(t *testing.T) {
	lp, err := LowPass[float64](testOrder, testCutoff, testSampleRate)
	require.NoError(t, err)
	hp, err := HighPass[float64](testOrder, testCutoff, testSampleRate)
	require.NoError(t, err)

	for i := range hp {
		want := -lp[i]
		if i == testOrder/2 {
			want++
		}
		assert.InDelta(t, want, hp[i], designTolerance)
	}

	_, err = HighPass[float64](testOrder+1, testCutoff, testSampleRate)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBandPass_PassesCenter(t *testing.T) {
	coeffs, err := BandPass[float64](testOrder, testBandLow, testBandHigh, testSampleRate)
	require.NoError(t, err)
	f := NewFIR(ApplyWindow(coeffs, WindowHamming, 0))

	center := cmplx.Abs(f.FrequencyResponse((testBandLow+testBandHigh)/2, testSampleRate))
	dc := cmplx.Abs(f.FrequencyResponse(0, testSampleRate))
	high := cmplx.Abs(f.FrequencyResponse(400, testSampleRate))
	assert.InDelta(t, 1.0, center, 0.05)
	assert.Less(t, dc, 0.01)
	assert.Less(t, high, 0.01)
}

func TestBandPass_Invalid(t *testing.T) {
	_, err := BandPass[float64](testOrder, testBandHigh, testBandLow, testSampleRate)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBandStop_InvertsBandPass(t *testing.T) {
	bp, err := BandPass[float64](testOrder, testBandLow, testBandHigh, testSampleRate)
	require.NoError(t, err)
	bs, err := BandStop[float64](testOrder, testBandLow, testBandHigh, testSampleRate)
	require.NoError(t, err)

	for i := range bs {
		want := -bp[i]
		if i == testOrder/2 {
			want++
		}
		assert.InDelta(t, want, bs[i], designTolerance)
	}
}

func TestDifferentiator(t *testing.T) {
	got, err := Differentiator[float64](4)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, 1, 0, -1, 0.5}, got)
	testutil.AssertAntisymmetric(t, got, 0)

	_, err = Differentiator[float64](3)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestIntegrator(t *testing.T) {
	got, err := Integrator[float64](4)
	require.NoError(t, err)
	testutil.AssertSliceInDelta(t, []float64{0, 0, 1, 0, 0}, got, designTolerance)

	got, err = Integrator[float64](1)
	require.NoError(t, err)
	// sinc(±0.5) = 2/π
	testutil.AssertSliceInDelta(t, []float64{2 / math.Pi, 2 / math.Pi}, got, designTolerance)
}

func TestNormalizeDCGain(t *testing.T) {
	c := []float64{1, 2, 1}
	NormalizeDCGain(c)
	assert.InDelta(t, 1.0, c[0]+c[1]+c[2], designTolerance)
	assert.InDelta(t, 0.5, c[1], designTolerance)

	zero := []float64{1, -1}
	NormalizeDCGain(zero)
	assert.Equal(t, []float64{1, -1}, zero)
}

func TestDesignLowPass_Auto(t *testing.T) {
	params := LowPassParams{
		Cutoff:          testCutoff,
		SampleRate:      testSampleRate,
		Window:          WindowKaiser,
		Attenuation:     testAttenuDB,
		TransitionWidth: testTransition,
		NormalizeGain:   true,
	}
	coeffs, err := DesignLowPass[float64](params)
	require.NoError(t, err)

	assert.Equal(t, 1, len(coeffs)%2, "automatic length is odd")
	testutil.AssertSymmetric(t, coeffs, designTolerance)
	testutil.AssertCenterIsMax(t, coeffs)

	f := NewFIR(coeffs)
	assert.InDelta(t, 1.0, cmplx.Abs(f.FrequencyResponse(0, testSampleRate)), 1e-9)
	stop := MagnitudeDB(cmplx.Abs(f.FrequencyResponse(testCutoff+2*testTransition, testSampleRate)))
	assert.Less(t, stop, -60.0)
}

func TestDesignLowPass_FixedOrder(t *testing.T) {
	coeffs, err := DesignLowPass[float32](LowPassParams{
		Order:      16,
		Cutoff:     testCutoff,
		SampleRate: testSampleRate,
		Window:     WindowHamming,
	})
	require.NoError(t, err)
	assert.Len(t, coeffs, 17)
}

func TestLowPassParams_Validate(t *testing.T) {
	valid := LowPassParams{Order: 8, Cutoff: testCutoff, SampleRate: testSampleRate}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *LowPassParams)
	}{
		{"negative order", func(p *LowPassParams) { p.Order = -1 }},
		{"cutoff above nyquist", func(p *LowPassParams) { p.Cutoff = 600 }},
		{"auto without attenuation", func(p *LowPassParams) { p.Order = 0; p.TransitionWidth = testTransition }},
		{"auto without transition", func(p *LowPassParams) { p.Order = 0; p.Attenuation = testAttenuDB }},
		{"negative attenuation", func(p *LowPassParams) { p.Attenuation = -3 }},
		{"unknown window", func(p *LowPassParams) { p.Window = Window(42) }},
		{"negative beta", func(p *LowPassParams) { p.Beta = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidParameter)
		})
	}
}
