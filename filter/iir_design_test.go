package filter

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-numkit/internal/testutil"
)

const (
	testRippleDB   = 1.0
	halfPowerGain  = math.Sqrt2 / 2
	passbandPoints = 64
)

func magnitudeAt(r Responder, f, fs float64) float64 {
	return cmplx.Abs(r.FrequencyResponse(f, fs))
}

func TestBiquads(t *testing.T) {
	p := BiquadParams{Freq: testAudioCutoff, Q: testQ, SampleRate: testAudioRate}
	nyquist := testAudioRate / 2

	tests := []struct {
		name   string
		design func(BiquadParams) (TransferFunc[float64], error)
		freq   float64
		want   float64
	}{
		{"low-pass DC", BiquadLowPass[float64], 0, 1},
		{"low-pass corner", BiquadLowPass[float64], testAudioCutoff, halfPowerGain},
		{"high-pass nyquist", BiquadHighPass[float64], nyquist, 1},
		{"high-pass corner", BiquadHighPass[float64], testAudioCutoff, halfPowerGain},
		{"band-pass center", BiquadBandPass[float64], testAudioCutoff, 1},
		{"band-pass DC", BiquadBandPass[float64], 0, 0},
		{"notch center", BiquadNotch[float64], testAudioCutoff, 0},
		{"notch DC", BiquadNotch[float64], 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := tt.design(p)
			require.NoError(t, err)
			require.Len(t, tf.B, 3)
			require.Len(t, tf.A, 3)
			assert.InDelta(t, 1.0, tf.A[0], 0)

			f, err := tf.New()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, magnitudeAt(f, tt.freq, testAudioRate), responseDelta)
			assert.True(t, f.IsStable())
		})
	}
}

func TestBiquadParams_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    BiquadParams
	}{
		{"zero Q", BiquadParams{Freq: testCutoff, Q: 0, SampleRate: testSampleRate}},
		{"infinite Q", BiquadParams{Freq: testCutoff, Q: math.Inf(1), SampleRate: testSampleRate}},
		{"freq above nyquist", BiquadParams{Freq: 501, Q: 1, SampleRate: testSampleRate}},
		{"zero rate", BiquadParams{Freq: testCutoff, Q: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.p.Validate(), ErrInvalidParameter)
			_, err := BiquadLowPass[float64](tt.p)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func cascadeOf(t *testing.T, sections []TransferFunc[float64], err error) *Cascade[float64] {
	t.Helper()
	require.NoError(t, err)
	c, err := NewCascade(sections...)
	require.NoError(t, err)
	return c
}

func TestButterworthLowPass(t *testing.T) {
	for order := 1; order <= 8; order++ {
		sections, err := ButterworthLowPassSections[float64](order, testAudioCutoff, testAudioRate)
		c := cascadeOf(t, sections, err)
		assert.Equal(t, StabilityStable, c.Stability(), "order %d", order)
		assert.InDelta(t, 1.0, magnitudeAt(c, 0, testAudioRate), responseDelta, "order %d", order)
		assert.InDelta(t, halfPowerGain, magnitudeAt(c, testAudioCutoff, testAudioRate), responseDelta, "order %d", order)

		tf, err := ButterworthLowPass[float64](order, testAudioCutoff, testAudioRate)
		require.NoError(t, err)
		assert.Len(t, tf.A, order+1)
		f, err := tf.New()
		require.NoError(t, err)
		assert.True(t, f.IsStable(), "order %d", order)
		// The expanded polynomial loses precision near DC as the order grows.
		assert.InDelta(t, 1.0, magnitudeAt(f, 0, testAudioRate), 1e-4, "order %d", order)
	}
}

func TestButterworthLowPass_MonotonicRolloff(t *testing.T) {
	sections, err := ButterworthLowPassSections[float64](5, testAudioCutoff, testAudioRate)
	c := cascadeOf(t, sections, err)

	resp := ComputeResponse(c, testAudioRate, passbandPoints)
	for k := 1; k < len(resp.Magnitude); k++ {
		assert.LessOrEqual(t, resp.Magnitude[k], resp.Magnitude[k-1]+responseDelta)
	}
}

func TestButterworthHighPass(t *testing.T) {
	for _, order := range []int{1, 2, 3, 6} {
		sections, err := ButterworthHighPassSections[float64](order, testAudioCutoff, testAudioRate)
		c := cascadeOf(t, sections, err)

		assert.InDelta(t, 0.0, magnitudeAt(c, 0, testAudioRate), responseDelta, "order %d", order)
		assert.InDelta(t, 1.0, magnitudeAt(c, testAudioRate/2, testAudioRate), responseDelta, "order %d", order)
		assert.InDelta(t, halfPowerGain, magnitudeAt(c, testAudioCutoff, testAudioRate), responseDelta, "order %d", order)

		tf, err := ButterworthHighPass[float64](order, testAudioCutoff, testAudioRate)
		require.NoError(t, err)
		assert.Len(t, tf.B, order+1)
	}
}

func TestButterworthSections(t *testing.T) {
	sections, err := ButterworthLowPassSections[float64](5, testAudioCutoff, testAudioRate)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Len(t, sections[0].A, 3)
	assert.Len(t, sections[2].A, 2, "odd order ends with a first-order section")
}

func TestChebyshevLowPass(t *testing.T) {
	edgeGain := math.Pow(10, -testRippleDB/20)
	for _, order := range []int{2, 3, 4, 5} {
		sections, err := ChebyshevLowPassSections[float64](order, testRippleDB, testAudioCutoff, testAudioRate)
		c := cascadeOf(t, sections, err)
		assert.Equal(t, StabilityStable, c.Stability())

		dc := magnitudeAt(c, 0, testAudioRate)
		if order%2 == 1 {
			assert.InDelta(t, 1.0, dc, responseDelta, "order %d", order)
		} else {
			assert.InDelta(t, edgeGain, dc, responseDelta, "order %d", order)
		}
		assert.InDelta(t, edgeGain, magnitudeAt(c, testAudioCutoff, testAudioRate), responseDelta, "order %d", order)

		// The passband stays inside the ripple band.
		for k := range passbandPoints {
			freq := testAudioCutoff * float64(k) / passbandPoints
			testutil.AssertInRange(t, magnitudeAt(c, freq, testAudioRate), edgeGain-responseDelta, 1+responseDelta)
		}

		tf, err := ChebyshevLowPass[float64](order, testRippleDB, testAudioCutoff, testAudioRate)
		require.NoError(t, err)
		f, err := tf.New()
		require.NoError(t, err)
		assert.True(t, f.IsStable(), "order %d", order)
	}
}

func TestChebyshevLowPass_Invalid(t *testing.T) {
	_, err := ChebyshevLowPass[float64](4, 0, testAudioCutoff, testAudioRate)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = ChebyshevLowPassSections[float64](0, testRippleDB, testAudioCutoff, testAudioRate)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestButterworth_Invalid(t *testing.T) {
	_, err := ButterworthLowPass[float64](0, testAudioCutoff, testAudioRate)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = ButterworthHighPass[float64](2, testAudioRate, testAudioRate)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestButterworth_Float32(t *testing.T) {
	sections, err := ButterworthLowPassSections[float32](4, testAudioCutoff, testAudioRate)
	require.NoError(t, err)
	f, err := NewCascade(sections...)
	require.NoError(t, err)

	var y float32
	for range 2000 {
		y = f.Filter(1)
	}
	assert.InDelta(t, 1.0, float64(y), 1e-3)
}

func TestTrapezoidalIntegrator(t *testing.T) {
	tf, err := TrapezoidalIntegrator[float64](10)
	require.NoError(t, err)
	f, err := tf.New()
	require.NoError(t, err)

	out := f.Process([]float64{1, 1, 1, 1})
	testutil.AssertSliceInDelta(t, []float64{0.05, 0.15, 0.25, 0.35}, out, iirTolerance)
	assert.Equal(t, StabilityUnstable, f.Stability(), "pole at z = 1")

	_, err = TrapezoidalIntegrator[float64](0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFirstDifference(t *testing.T) {
	tf, err := FirstDifference[float64](10)
	require.NoError(t, err)
	f, err := tf.New()
	require.NoError(t, err)

	out := f.Process([]float64{0, 1, 2, 3})
	testutil.AssertSliceInDelta(t, []float64{0, 10, 10, 10}, out, iirTolerance)
}

func TestDCBlocker(t *testing.T) {
	tf, err := DCBlocker[float64](5, testAudioRate)
	require.NoError(t, err)
	hp, err := FirstOrderHighPass[float64](5, testAudioRate)
	require.NoError(t, err)
	assert.Equal(t, hp, tf)
}

func TestPolymul(t *testing.T) {
	assert.Equal(t, []float64{1, 5, 6}, Polymul([]float64{1, 2}, []float64{1, 3}))
	assert.Equal(t, []float64{2}, Polymul([]float64{1}, []float64{2}))
	assert.Empty(t, Polymul(nil, []float64{1}))
}

func TestCascade_MatchesExpanded(t *testing.T) {
	sections, err := ButterworthLowPassSections[float64](4, testAudioCutoff, testAudioRate)
	require.NoError(t, err)
	c, err := NewCascade(sections...)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Sections())

	tf, err := ButterworthLowPass[float64](4, testAudioCutoff, testAudioRate)
	require.NoError(t, err)
	direct, err := tf.New()
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(15, 16))
	x := randomSignal(rng, 300)
	testutil.AssertSliceInDelta(t, direct.Process(x), c.Process(x), 1e-8)

	for _, freq := range []float64{0, 500, testAudioCutoff, 5000} {
		want := direct.FrequencyResponse(freq, testAudioRate)
		got := c.FrequencyResponse(freq, testAudioRate)
		assert.InDelta(t, cmplx.Abs(want), cmplx.Abs(got), responseDelta)
	}

	expanded := c.TransferFunc()
	testutil.AssertSliceInDelta(t, tf.B, expanded.B, iirTolerance)
	testutil.AssertSliceInDelta(t, tf.A, expanded.A, iirTolerance)
}

func TestCascade_ResetAndProcessTo(t *testing.T) {
	sections, err := ChebyshevLowPassSections[float64](4, testRippleDB, testAudioCutoff, testAudioRate)
	require.NoError(t, err)
	c, err := NewCascade(sections...)
	require.NoError(t, err)

	x := impulse(64)
	first := c.Process(x)
	c.Reset()
	dst := make([]float64, len(x))
	require.NoError(t, c.ProcessTo(dst, x))
	assert.Equal(t, first, dst)
	assert.ErrorIs(t, c.ProcessTo(dst[:2], x), ErrSizeMismatch)
}

func TestCascade_Stability(t *testing.T) {
	stable := TransferFunc[float64]{B: []float64{1}, A: []float64{1, -0.5}}
	unstable := TransferFunc[float64]{B: []float64{1}, A: []float64{1, -2}}
	unknown := TransferFunc[float64]{B: []float64{1}, A: []float64{1, math.Inf(1)}}

	tests := []struct {
		name string
		tfs  []TransferFunc[float64]
		want Stability
	}{
		{"all stable", []TransferFunc[float64]{stable, stable}, StabilityStable},
		{"one unstable", []TransferFunc[float64]{stable, unstable, unknown}, StabilityUnstable},
		{"one unknown", []TransferFunc[float64]{stable, unknown}, StabilityUnknown},
		{"empty", nil, StabilityStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCascade(tt.tfs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Stability())
		})
	}
}

func TestNewCascade_InvalidSection(t *testing.T) {
	_, err := NewCascade(TransferFunc[float64]{B: []float64{1}, A: []float64{0}})
	assert.ErrorIs(t, err, ErrInvalidDenominator)
}

func TestFilterer_Implementations(t *testing.T) {
	iir, err := NewIIR([]float64{1}, []float64{1})
	require.NoError(t, err)
	c, err := NewCascade[float64]()
	require.NoError(t, err)

	for _, f := range []Filterer[float64]{NewFIR([]float64{1}), iir, c} {
		assert.InDelta(t, 3.0, f.Filter(3), 0)
	}
}
