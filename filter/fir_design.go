package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-numkit/internal/mathutil"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// FIR design limits.
const (
	minTransitionFraction = 1e-4
	maxFIROrder           = 1 << 16
)

// MovingAverage returns width taps of 1/width.
func MovingAverage[F Float](width int) ([]F, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: moving average width %d must be at least 1", ErrInvalidParameter, width)
	}
	out := make([]F, width)
	v := 1 / F(width)
	for i := range out {
		out[i] = v
	}
	return out, nil
}

// LowPass returns the order+1 taps of a rectangular-window sinc low-pass:
// b[n] = sin(ωc·k)/(π·k) with k = n − order/2, and ωc/π at k = 0.
func LowPass[F Float](order int, fc, fs float64) ([]F, error) {
	if err := validateFIROrder(order); err != nil {
		return nil, err
	}
	if err := validateCutoff(fc, fs); err != nil {
		return nil, err
	}
	return sincLowPass[F](order, omega(fc, fs)), nil
}

func sincLowPass[F Float](order int, wc float64) []F {
	out := make([]F, order+1)
	center := float64(order) / halfOrder
	for n := range out {
		k := float64(n) - center
		if k == 0 {
			out[n] = F(wc / math.Pi)
			continue
		}
		out[n] = F(math.Sin(wc*k) / (math.Pi * k))
	}
	return out
}

// HighPass spectrally inverts LowPass: taps are negated and 1 is added to
// the center tap. order must be even so that the center tap exists.
func HighPass[F Float](order int, fc, fs float64) ([]F, error) {
	if err := validateEvenOrder(order); err != nil {
		return nil, err
	}
	lp, err := LowPass[F](order, fc, fs)
	if err != nil {
		return nil, err
	}
	invert(lp)
	return lp, nil
}

// BandPass passes (f1, f2) as the difference of two high-pass filters at the
// band edges. order must be even and f1 < f2.
func BandPass[F Float](order int, f1, f2, fs float64) ([]F, error) {
	if !(f1 < f2) {
		return nil, fmt.Errorf("%w: band edges %g Hz and %g Hz must be increasing", ErrInvalidParameter, f1, f2)
	}
	lo, err := HighPass[F](order, f1, fs)
	if err != nil {
		return nil, err
	}
	hi, err := HighPass[F](order, f2, fs)
	if err != nil {
		return nil, err
	}
	for i := range lo {
		lo[i] -= hi[i]
	}
	return lo, nil
}

// BandStop rejects (f1, f2) by spectral inversion of BandPass.
func BandStop[F Float](order int, f1, f2, fs float64) ([]F, error) {
	bp, err := BandPass[F](order, f1, f2, fs)
	if err != nil {
		return nil, err
	}
	invert(bp)
	return bp, nil
}

// Differentiator returns b[n] = cos(π·k)/k with k = n − order/2 and a zero
// center tap. order must be even.
func Differentiator[F Float](order int) ([]F, error) {
	if err := validateEvenOrder(order); err != nil {
		return nil, err
	}
	out := make([]F, order+1)
	center := order / 2
	for n := range out {
		k := n - center
		if k == 0 {
			continue
		}
		// cos(πk) is exactly ±1 for integer k.
		sign := 1.0
		if k%2 != 0 {
			sign = -1
		}
		out[n] = F(sign / float64(k))
	}
	return out, nil
}

// Integrator returns b[n] = sin(π·k)/(π·k) with k = n − order/2.
func Integrator[F Float](order int) ([]F, error) {
	if err := validateFIROrder(order); err != nil {
		return nil, err
	}
	out := make([]F, order+1)
	center := float64(order) / halfOrder
	for n := range out {
		out[n] = F(mathutil.Sinc(float64(n) - center))
	}
	return out, nil
}

// NormalizeDCGain scales coeffs in place so that they sum to 1. Coefficient
// sets with a vanishing sum are left unchanged.
func NormalizeDCGain[F Float](coeffs []F) {
	ops := simdops.For[F]()
	sum := ops.Sum(coeffs)
	if math.Abs(float64(sum)) > gainThreshold {
		ops.Scale(coeffs, coeffs, 1/sum)
	}
}

func invert[F Float](coeffs []F) {
	for i := range coeffs {
		coeffs[i] = -coeffs[i]
	}
	coeffs[len(coeffs)/2]++
}

func validateFIROrder(order int) error {
	if order < 1 || order > maxFIROrder {
		return fmt.Errorf("%w: FIR order %d outside [1, %d]", ErrInvalidParameter, order, maxFIROrder)
	}
	return nil
}

func validateEvenOrder(order int) error {
	if err := validateFIROrder(order); err != nil {
		return err
	}
	if order%2 != 0 {
		return fmt.Errorf("%w: FIR order %d must be even", ErrInvalidParameter, order)
	}
	return nil
}

// LowPassParams configures DesignLowPass.
type LowPassParams struct {
	// Order of the filter; the design has Order+1 taps. Zero derives the
	// order from Attenuation and TransitionWidth.
	Order int

	// Cutoff frequency in Hz.
	Cutoff float64

	// SampleRate in Hz.
	SampleRate float64

	// Window applied to the ideal sinc.
	Window Window

	// Beta is the Kaiser β. Zero derives it from Attenuation.
	Beta float64

	// Attenuation is the target stopband attenuation in dB, used for the
	// Kaiser β and automatic order.
	Attenuation float64

	// TransitionWidth in Hz, used for the automatic order.
	TransitionWidth float64

	// NormalizeGain scales the taps to unit DC gain.
	NormalizeGain bool
}

// Validate checks the parameters.
func (p *LowPassParams) Validate() error {
	if err := validateCutoff(p.Cutoff, p.SampleRate); err != nil {
		return err
	}
	if p.Order < 0 || p.Order > maxFIROrder {
		return fmt.Errorf("%w: FIR order %d outside [0, %d]", ErrInvalidParameter, p.Order, maxFIROrder)
	}
	if p.Attenuation < 0 {
		return fmt.Errorf("%w: attenuation %g dB must not be negative", ErrInvalidParameter, p.Attenuation)
	}
	if p.Order == 0 {
		if p.Attenuation == 0 {
			return fmt.Errorf("%w: automatic order needs an attenuation", ErrInvalidParameter)
		}
		if p.TransitionWidth < minTransitionFraction*p.SampleRate {
			return fmt.Errorf("%w: transition width %g Hz too narrow for automatic order", ErrInvalidParameter, p.TransitionWidth)
		}
	}
	if p.Window < WindowRectangular || p.Window > WindowKaiser {
		return fmt.Errorf("%w: unknown window %d", ErrInvalidParameter, int(p.Window))
	}
	if p.Beta < 0 {
		return fmt.Errorf("%w: Kaiser beta %g must not be negative", ErrInvalidParameter, p.Beta)
	}
	return nil
}

// DesignLowPass designs a windowed-sinc low-pass.
//
// With Order zero the length comes from Kaiser's estimate for the requested
// attenuation and transition width, and the Kaiser β is derived from the
// attenuation unless Beta is set.
func DesignLowPass[F Float](p LowPassParams) ([]F, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	order := p.Order
	if order == 0 {
		taps := mathutil.EstimateFilterLength(p.Attenuation, p.TransitionWidth/p.SampleRate)
		order = taps - 1
	}
	beta := p.Beta
	if p.Window == WindowKaiser && beta == 0 && p.Attenuation > 0 {
		beta = mathutil.KaiserBeta(p.Attenuation)
	}

	coeffs := ApplyWindow(sincLowPass[F](order, omega(p.Cutoff, p.SampleRate)), p.Window, beta)
	if p.NormalizeGain {
		NormalizeDCGain(coeffs)
	}
	return coeffs, nil
}
