package numkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-numkit/filter"
)

const (
	testSampleRate = 48000.0
	testCutoff     = 1000.0
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{Kind: KindLowPass, SampleRate: testSampleRate, Cutoff: testCutoff}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown kind", func(c *Config) { c.Kind = FilterKind(99) }},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"negative channels", func(c *Config) { c.Channels = -1 }},
		{"too many channels", func(c *Config) { c.Channels = maxChannels + 1 }},
		{"negative order", func(c *Config) { c.Order = -2 }},
		{"IIR order too high", func(c *Config) { c.Kind = KindButterworthLowPass; c.Order = maxIIROrder + 1 }},
		{"cutoff at nyquist", func(c *Config) { c.Cutoff = testSampleRate / 2 }},
		{"band without upper edge", func(c *Config) { c.Kind = KindBandPass }},
		{"band edges reversed", func(c *Config) { c.Kind = KindBandStop; c.Cutoff2 = testCutoff / 2 }},
		{"negative Q", func(c *Config) { c.Q = -1 }},
		{"negative ripple", func(c *Config) { c.RippleDB = -1 }},
		{"negative beta", func(c *Config) { c.Beta = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, ErrPrecondition)
		})
	}
}

func TestConfig_ValidateOptionalCutoff(t *testing.T) {
	for _, kind := range []FilterKind{KindMovingAverage, KindDCBlocker} {
		c := Config{Kind: kind, SampleRate: testSampleRate}
		assert.NoError(t, c.Validate(), kind.String())
	}
}

func TestConfig_Defaults(t *testing.T) {
	tests := []struct {
		kind  FilterKind
		order int
	}{
		{KindLowPass, defaultFIROrder},
		{KindMovingAverage, defaultMovingAverageWidth},
		{KindButterworthLowPass, defaultIIROrder},
		{KindNotch, defaultIIROrder},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c := Config{Kind: tt.kind, SampleRate: testSampleRate}.withDefaults()
			assert.Equal(t, tt.order, c.Order)
			assert.Equal(t, 1, c.Channels)
			assert.InDelta(t, defaultQ, c.Q, 0)
			assert.InDelta(t, defaultRippleDB, c.RippleDB, 0)
		})
	}

	c := Config{Kind: KindDCBlocker, SampleRate: testSampleRate}.withDefaults()
	assert.InDelta(t, defaultDCBlockCutoff, c.Cutoff, 0)
}

func TestParseFilterKind(t *testing.T) {
	for _, name := range FilterKinds() {
		kind, err := ParseFilterKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, kind.String())
	}

	kind, err := ParseFilterKind(" Butter-LP ")
	require.NoError(t, err)
	assert.Equal(t, KindButterworthLowPass, kind)

	_, err = ParseFilterKind("elliptic")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "unknown", FilterKind(-1).String())
}

func TestNewFilter_Structures(t *testing.T) {
	tests := []struct {
		config    Config
		structure string
		sections  int
	}{
		{Config{Kind: KindLowPass, Cutoff: testCutoff}, "fir", 0},
		{Config{Kind: KindHighPass, Cutoff: testCutoff, Window: filter.WindowHamming}, "fir", 0},
		{Config{Kind: KindBandPass, Cutoff: testCutoff, Cutoff2: 2 * testCutoff}, "fir", 0},
		{Config{Kind: KindBandStop, Cutoff: testCutoff, Cutoff2: 2 * testCutoff}, "fir", 0},
		{Config{Kind: KindMovingAverage}, "fir", 0},
		{Config{Kind: KindButterworthLowPass, Cutoff: testCutoff, Order: 5}, "cascade", 3},
		{Config{Kind: KindButterworthHighPass, Cutoff: testCutoff}, "cascade", 2},
		{Config{Kind: KindChebyshevLowPass, Cutoff: testCutoff, Order: 6}, "cascade", 3},
		{Config{Kind: KindBiquadLowPass, Cutoff: testCutoff}, "iir", 1},
		{Config{Kind: KindBiquadHighPass, Cutoff: testCutoff}, "iir", 1},
		{Config{Kind: KindBiquadBandPass, Cutoff: testCutoff}, "iir", 1},
		{Config{Kind: KindNotch, Cutoff: testCutoff, Q: 10}, "iir", 1},
		{Config{Kind: KindOnePoleLowPass, Cutoff: testCutoff}, "iir", 1},
		{Config{Kind: KindDCBlocker}, "iir", 1},
	}
	for _, tt := range tests {
		t.Run(tt.config.Kind.String(), func(t *testing.T) {
			cfg := tt.config
			cfg.SampleRate = testSampleRate
			f, err := NewFilter[float64](&cfg)
			require.NoError(t, err)

			info := GetInfo(f)
			assert.Equal(t, tt.structure, info.Structure)
			assert.Equal(t, tt.sections, info.Sections)
			assert.Equal(t, filter.StabilityStable, info.Stability)
		})
	}
}

func TestNewFilter_Info(t *testing.T) {
	f, err := NewFilter[float64](&Config{Kind: KindLowPass, SampleRate: testSampleRate, Cutoff: testCutoff, Order: 32})
	require.NoError(t, err)
	info := GetInfo(f)
	assert.Equal(t, 32, info.Order)
	assert.InDelta(t, 16.0, info.GroupDelay, 0)
	assert.NotEmpty(t, info.SIMD)

	f, err = NewFilter[float64](&Config{Kind: KindButterworthLowPass, SampleRate: testSampleRate, Cutoff: testCutoff, Order: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, GetInfo(f).Order)
}

func TestNewFilter_Errors(t *testing.T) {
	_, err := NewFilter[float64](nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	// An odd FIR high-pass order passes Validate but fails the design.
	_, err = NewFilter[float64](&Config{Kind: KindHighPass, SampleRate: testSampleRate, Cutoff: testCutoff, Order: 7})
	require.ErrorIs(t, err, filter.ErrInvalidParameter)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestNewFilter_DoesNotModifyConfig(t *testing.T) {
	cfg := &Config{Kind: KindButterworthLowPass, SampleRate: testSampleRate, Cutoff: testCutoff}
	_, err := NewFilter[float32](cfg)
	require.NoError(t, err)
	assert.Zero(t, cfg.Order)
	assert.Zero(t, cfg.Q)
}
