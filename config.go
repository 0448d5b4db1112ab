package numkit

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-numkit/filter"
	"github.com/tphakala/go-numkit/internal/numerr"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// Error categories shared by every package of the toolkit.
var (
	// ErrPrecondition marks a caller error: a wrong shape, length or parameter.
	ErrPrecondition = numerr.ErrPrecondition

	// ErrNoResult marks valid input without an answer, such as a singular matrix.
	ErrNoResult = numerr.ErrNoResult
)

// ErrInvalidConfig indicates invalid configuration parameters.
var ErrInvalidConfig = numerr.Precondition("invalid filter configuration")

// Filter is the streaming filter built from a Config.
type Filter[F filter.Float] interface {
	filter.Filterer[F]
	filter.Responder

	// ProcessTo filters src into dst, which must have the same length.
	ProcessTo(dst, src []F) error
}

// FilterKind selects a filter design.
type FilterKind int

const (
	// KindLowPass is a windowed-sinc FIR low-pass at Cutoff.
	KindLowPass FilterKind = iota

	// KindHighPass is a windowed-sinc FIR high-pass at Cutoff.
	KindHighPass

	// KindBandPass is a windowed-sinc FIR band-pass between Cutoff and Cutoff2.
	KindBandPass

	// KindBandStop is a windowed-sinc FIR band-stop between Cutoff and Cutoff2.
	KindBandStop

	// KindMovingAverage is an FIR average over Order samples.
	KindMovingAverage

	// KindButterworthLowPass is an IIR Butterworth low-pass run as sections.
	KindButterworthLowPass

	// KindButterworthHighPass is an IIR Butterworth high-pass run as sections.
	KindButterworthHighPass

	// KindChebyshevLowPass is an IIR Chebyshev type I low-pass with RippleDB.
	KindChebyshevLowPass

	// KindBiquadLowPass is a single RBJ low-pass biquad with quality Q.
	KindBiquadLowPass

	// KindBiquadHighPass is a single RBJ high-pass biquad with quality Q.
	KindBiquadHighPass

	// KindBiquadBandPass is a single RBJ band-pass biquad centered at Cutoff.
	KindBiquadBandPass

	// KindNotch is an RBJ notch centered at Cutoff.
	KindNotch

	// KindOnePoleLowPass is the first-order IIR low-pass.
	KindOnePoleLowPass

	// KindDCBlocker is a first-order high-pass, by default at 10 Hz.
	KindDCBlocker
)

var kindNames = [...]string{
	KindLowPass:             "lowpass",
	KindHighPass:            "highpass",
	KindBandPass:            "bandpass",
	KindBandStop:            "bandstop",
	KindMovingAverage:       "movavg",
	KindButterworthLowPass:  "butter-lp",
	KindButterworthHighPass: "butter-hp",
	KindChebyshevLowPass:    "cheby-lp",
	KindBiquadLowPass:       "biquad-lp",
	KindBiquadHighPass:      "biquad-hp",
	KindBiquadBandPass:      "biquad-bp",
	KindNotch:               "notch",
	KindOnePoleLowPass:      "onepole-lp",
	KindDCBlocker:           "dcblock",
}

// String returns the short kind name accepted by ParseFilterKind.
func (k FilterKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseFilterKind maps a short kind name to its FilterKind.
func ParseFilterKind(name string) (FilterKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return FilterKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown filter kind %q", ErrInvalidConfig, name)
}

// FilterKinds returns every kind name, for usage messages.
func FilterKinds() []string {
	return append([]string(nil), kindNames[:]...)
}

// isFIR reports whether the kind designs an FIR filter.
func (k FilterKind) isFIR() bool {
	return k <= KindMovingAverage
}

// isBand reports whether the kind uses both Cutoff and Cutoff2.
func (k FilterKind) isBand() bool {
	return k == KindBandPass || k == KindBandStop
}

// Config holds filter configuration.
type Config struct {
	// Kind selects the design.
	Kind FilterKind

	// SampleRate of the signal in Hz.
	SampleRate float64

	// Cutoff is the corner or center frequency in Hz. Band kinds use it as
	// the lower edge.
	Cutoff float64

	// Cutoff2 is the upper band edge in Hz for band kinds.
	Cutoff2 float64

	// Order of the design. Zero selects a default per kind: 64 for FIR
	// kinds, 4 for Butterworth and Chebyshev, 8 samples for the moving
	// average. FIR high-pass and band kinds need an even order.
	Order int

	// Q is the quality factor of biquad kinds. Zero selects 1/√2.
	Q float64

	// RippleDB is the Chebyshev passband ripple. Zero selects 1 dB.
	RippleDB float64

	// Window tapers FIR designs.
	Window filter.Window

	// Beta is the Kaiser β when Window is filter.WindowKaiser.
	Beta float64

	// Channels is the number of channels handled by NewMultiChannel.
	// Zero means one.
	Channels int

	// EnableParallel processes channels concurrently in NewMultiChannel.
	// Has no effect on mono input.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Kind < 0 || int(c.Kind) >= len(kindNames) {
		return fmt.Errorf("%w: unknown filter kind %d", ErrInvalidConfig, int(c.Kind))
	}

	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	if c.Channels < 0 || c.Channels > maxChannels {
		return fmt.Errorf("%w: channels must be in [0, %d]", ErrInvalidConfig, maxChannels)
	}

	if c.Order < 0 {
		return fmt.Errorf("%w: order must not be negative", ErrInvalidConfig)
	}
	limit := maxIIROrder
	if c.Kind.isFIR() {
		limit = maxFIROrder
	}
	if c.Order > limit {
		return fmt.Errorf("%w: order %d above %d for %s", ErrInvalidConfig, c.Order, limit, c.Kind)
	}

	nyquist := c.SampleRate / nyquistDivisor
	if c.Kind != KindMovingAverage && !(c.Kind == KindDCBlocker && c.Cutoff == 0) {
		if !(c.Cutoff > 0 && c.Cutoff < nyquist) {
			return fmt.Errorf("%w: cutoff %g Hz must be in (0, %g)", ErrInvalidConfig, c.Cutoff, nyquist)
		}
	}
	if c.Kind.isBand() && !(c.Cutoff2 > c.Cutoff && c.Cutoff2 < nyquist) {
		return fmt.Errorf("%w: upper band edge %g Hz must be in (%g, %g)", ErrInvalidConfig, c.Cutoff2, c.Cutoff, nyquist)
	}

	if c.Q < 0 {
		return fmt.Errorf("%w: Q must not be negative", ErrInvalidConfig)
	}
	if c.RippleDB < 0 {
		return fmt.Errorf("%w: ripple must not be negative", ErrInvalidConfig)
	}
	if c.Beta < 0 {
		return fmt.Errorf("%w: Kaiser beta must not be negative", ErrInvalidConfig)
	}
	return nil
}

// withDefaults returns a copy of c with zero fields replaced by the kind's
// defaults.
func (c Config) withDefaults() Config {
	if c.Channels == 0 {
		c.Channels = 1
	}
	if c.Q == 0 {
		c.Q = defaultQ
	}
	if c.RippleDB == 0 {
		c.RippleDB = defaultRippleDB
	}
	if c.Kind == KindDCBlocker && c.Cutoff == 0 {
		c.Cutoff = defaultDCBlockCutoff
	}
	if c.Order == 0 {
		switch {
		case c.Kind == KindMovingAverage:
			c.Order = defaultMovingAverageWidth
		case c.Kind.isFIR():
			c.Order = defaultFIROrder
		default:
			c.Order = defaultIIROrder
		}
	}
	return c
}

// Info describes a built filter.
type Info struct {
	// Structure is "fir", "iir" or "cascade".
	Structure string

	// Order is the number of taps minus one for FIR filters, the
	// denominator degree for IIR filters, and the summed section order for
	// cascades.
	Order int

	// Sections is the number of IIR sections; 1 for a plain IIR, 0 for FIR.
	Sections int

	// GroupDelay in samples for linear-phase FIR filters, 0 otherwise.
	GroupDelay float64

	// Stability of the recursive part. FIR filters are always stable.
	Stability filter.Stability

	// SIMD names the instruction set used by the dot-product kernels.
	SIMD string
}

// GetInfo returns information about a filter built by NewFilter.
// Filters of other types report only an unknown stability.
func GetInfo[F filter.Float](f Filter[F]) Info {
	info := structureInfo(f)
	info.SIMD = simdops.Info()
	return info
}

func structureInfo[F filter.Float](f Filter[F]) Info {
	switch v := f.(type) {
	case *filter.FIR[F]:
		return Info{
			Structure:  "fir",
			Order:      v.Order(),
			GroupDelay: v.GroupDelay(),
			Stability:  filter.StabilityStable,
		}
	case *filter.IIR[F]:
		return Info{
			Structure: "iir",
			Order:     v.Order(),
			Sections:  1,
			Stability: v.Stability(),
		}
	case *filter.Cascade[F]:
		order := 0
		for i := range v.Sections() {
			order += v.Section(i).Order()
		}
		return Info{
			Structure: "cascade",
			Order:     order,
			Sections:  v.Sections(),
			Stability: v.Stability(),
		}
	default:
		return Info{Structure: "unknown", Stability: filter.StabilityUnknown}
	}
}
