package numkit

import (
	"fmt"

	"github.com/tphakala/go-numkit/filter"
)

// NewFilter designs and builds the filter described by config.
//
// FIR kinds return a *filter.FIR, single-section IIR kinds a *filter.IIR, and
// Butterworth and Chebyshev kinds a *filter.Cascade of second-order sections.
func NewFilter[F filter.Float](config *Config) (Filter[F], error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := config.withDefaults()

	f, err := buildFilter[F](&c)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s filter: %w", c.Kind, err)
	}
	return f, nil
}

// buildFilter dispatches on the kind. c has its defaults applied.
func buildFilter[F filter.Float](c *Config) (Filter[F], error) {
	if c.Kind.isFIR() {
		coeffs, err := designFIR[F](c)
		if err != nil {
			return nil, err
		}
		return filter.NewFIR(coeffs), nil
	}

	switch c.Kind {
	case KindButterworthLowPass, KindButterworthHighPass, KindChebyshevLowPass:
		sections, err := designSections[F](c)
		if err != nil {
			return nil, err
		}
		return filter.NewCascade(sections...)
	}

	tf, err := designSingle[F](c)
	if err != nil {
		return nil, err
	}
	return tf.New()
}

func designFIR[F filter.Float](c *Config) ([]F, error) {
	var (
		coeffs []F
		err    error
	)
	switch c.Kind {
	case KindMovingAverage:
		return filter.MovingAverage[F](c.Order)
	case KindLowPass:
		coeffs, err = filter.DesignLowPass[F](filter.LowPassParams{
			Order:         c.Order,
			Cutoff:        c.Cutoff,
			SampleRate:    c.SampleRate,
			Window:        c.Window,
			Beta:          c.Beta,
			NormalizeGain: true,
		})
		return coeffs, err
	case KindHighPass:
		coeffs, err = filter.HighPass[F](c.Order, c.Cutoff, c.SampleRate)
	case KindBandPass:
		coeffs, err = filter.BandPass[F](c.Order, c.Cutoff, c.Cutoff2, c.SampleRate)
	case KindBandStop:
		coeffs, err = filter.BandStop[F](c.Order, c.Cutoff, c.Cutoff2, c.SampleRate)
	default:
		return nil, fmt.Errorf("%w: %s is not an FIR kind", ErrInvalidConfig, c.Kind)
	}
	if err != nil {
		return nil, err
	}
	if c.Window == filter.WindowRectangular {
		return coeffs, nil
	}
	return filter.ApplyWindow(coeffs, c.Window, c.Beta), nil
}

func designSections[F filter.Float](c *Config) ([]filter.TransferFunc[F], error) {
	switch c.Kind {
	case KindButterworthLowPass:
		return filter.ButterworthLowPassSections[F](c.Order, c.Cutoff, c.SampleRate)
	case KindButterworthHighPass:
		return filter.ButterworthHighPassSections[F](c.Order, c.Cutoff, c.SampleRate)
	case KindChebyshevLowPass:
		return filter.ChebyshevLowPassSections[F](c.Order, c.RippleDB, c.Cutoff, c.SampleRate)
	default:
		return nil, fmt.Errorf("%w: %s is not a cascade kind", ErrInvalidConfig, c.Kind)
	}
}

func designSingle[F filter.Float](c *Config) (filter.TransferFunc[F], error) {
	p := filter.BiquadParams{Freq: c.Cutoff, Q: c.Q, SampleRate: c.SampleRate}
	switch c.Kind {
	case KindBiquadLowPass:
		return filter.BiquadLowPass[F](p)
	case KindBiquadHighPass:
		return filter.BiquadHighPass[F](p)
	case KindBiquadBandPass:
		return filter.BiquadBandPass[F](p)
	case KindNotch:
		return filter.BiquadNotch[F](p)
	case KindOnePoleLowPass:
		return filter.FirstOrderLowPass[F](c.Cutoff, c.SampleRate)
	case KindDCBlocker:
		return filter.DCBlocker[F](c.Cutoff, c.SampleRate)
	default:
		return filter.TransferFunc[F]{}, fmt.Errorf("%w: unsupported filter kind %s", ErrInvalidConfig, c.Kind)
	}
}
