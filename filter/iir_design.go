package filter

import (
	"fmt"
	"math"
)

// TransferFunc is a rational transfer function B(z)/A(z) with coefficients
// in ascending powers of z⁻¹.
type TransferFunc[F Float] struct {
	B []F
	A []F
}

// New builds an IIR filter from the transfer function.
func (tf TransferFunc[F]) New() (*IIR[F], error) {
	return NewIIR(tf.B, tf.A)
}

// BiquadParams configures the second-order designs.
type BiquadParams struct {
	// Freq is the corner or center frequency in Hz.
	Freq float64

	// Q is the quality factor. 1/√2 gives a maximally flat response.
	Q float64

	// SampleRate in Hz.
	SampleRate float64
}

// Validate checks that the frequency lies strictly between 0 and Nyquist
// and that Q is positive.
func (p BiquadParams) Validate() error {
	if err := validateCutoff(p.Freq, p.SampleRate); err != nil {
		return err
	}
	if !(p.Q > 0) || math.IsInf(p.Q, 0) {
		return fmt.Errorf("%w: Q %g must be positive", ErrInvalidParameter, p.Q)
	}
	return nil
}

func validateSampleRate(fs float64) error {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return fmt.Errorf("%w: sample rate %g Hz must be positive", ErrInvalidParameter, fs)
	}
	return nil
}

func validateCutoff(fc, fs float64) error {
	if err := validateSampleRate(fs); err != nil {
		return err
	}
	nyquist := fs / nyquistDivisor
	if !(fc > 0 && fc < nyquist) {
		return fmt.Errorf("%w: cutoff %g Hz outside (0, %g)", ErrInvalidParameter, fc, nyquist)
	}
	return nil
}

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: order %d must be at least 1", ErrInvalidParameter, order)
	}
	return nil
}

// FirstOrderLowPass returns b = [1−α], a = [1, −α] with α = exp(−2π·fc/fs).
func FirstOrderLowPass[F Float](fc, fs float64) (TransferFunc[F], error) {
	if err := validateCutoff(fc, fs); err != nil {
		return TransferFunc[F]{}, err
	}
	alpha := math.Exp(-twoPi * fc / fs)
	return TransferFunc[F]{
		B: []F{F(1 - alpha)},
		A: []F{1, F(-alpha)},
	}, nil
}

// FirstOrderHighPass returns b = [(1+α)/2, −(1+α)/2], a = [1, −α] with
// α = exp(−2π·fc/fs).
func FirstOrderHighPass[F Float](fc, fs float64) (TransferFunc[F], error) {
	if err := validateCutoff(fc, fs); err != nil {
		return TransferFunc[F]{}, err
	}
	alpha := math.Exp(-twoPi * fc / fs)
	g := (1 + alpha) / 2
	return TransferFunc[F]{
		B: []F{F(g), F(-g)},
		A: []F{1, F(-alpha)},
	}, nil
}

// DCBlocker is a first-order high-pass with corner fc.
func DCBlocker[F Float](fc, fs float64) (TransferFunc[F], error) {
	return FirstOrderHighPass[F](fc, fs)
}

// biquadKind selects an RBJ cookbook numerator.
type biquadKind int

const (
	biquadLowPass biquadKind = iota
	biquadHighPass
	biquadBandPass
	biquadNotch
)

// biquad implements the RBJ audio-EQ cookbook designs, normalized so a[0] = 1.
func biquad[F Float](kind biquadKind, p BiquadParams) (TransferFunc[F], error) {
	if err := p.Validate(); err != nil {
		return TransferFunc[F]{}, err
	}
	w0 := omega(p.Freq, p.SampleRate)
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * p.Q)

	var b0, b1, b2 float64
	switch kind {
	case biquadLowPass:
		b1 = 1 - cos
		b0 = b1 / 2
		b2 = b0
	case biquadHighPass:
		b1 = -(1 + cos)
		b0 = (1 + cos) / 2
		b2 = b0
	case biquadBandPass:
		b0 = alpha
		b2 = -alpha
	case biquadNotch:
		b0 = 1
		b1 = -2 * cos
		b2 = 1
	}
	a0 := 1 + alpha
	return TransferFunc[F]{
		B: []F{F(b0 / a0), F(b1 / a0), F(b2 / a0)},
		A: []F{1, F(-2 * cos / a0), F((1 - alpha) / a0)},
	}, nil
}

// BiquadLowPass is the RBJ second-order low-pass.
func BiquadLowPass[F Float](p BiquadParams) (TransferFunc[F], error) {
	return biquad[F](biquadLowPass, p)
}

// BiquadHighPass is the RBJ second-order high-pass.
func BiquadHighPass[F Float](p BiquadParams) (TransferFunc[F], error) {
	return biquad[F](biquadHighPass, p)
}

// BiquadBandPass is the RBJ band-pass with 0 dB peak gain at Freq.
func BiquadBandPass[F Float](p BiquadParams) (TransferFunc[F], error) {
	return biquad[F](biquadBandPass, p)
}

// BiquadNotch is the RBJ notch with a zero at Freq.
func BiquadNotch[F Float](p BiquadParams) (TransferFunc[F], error) {
	return biquad[F](biquadNotch, p)
}

// analogSection is n(s)/d(s) with polynomials of degree at most two,
// stored as {s², s¹, s⁰} coefficients. first marks a first-order section.
type analogSection struct {
	n, d  [3]float64
	first bool
}

// bilinear maps an analog section with unit cutoff to the digital domain
// using s = (1/K)·(1−z⁻¹)/(1+z⁻¹), K = tan(π·fc/fs).
func bilinear[F Float](s analogSection, k float64) TransferFunc[F] {
	if s.first {
		n1, n0 := s.n[1], s.n[2]
		d1, d0 := s.d[1], s.d[2]
		a0 := d1 + d0*k
		return TransferFunc[F]{
			B: []F{F((n1 + n0*k) / a0), F((-n1 + n0*k) / a0)},
			A: []F{1, F((-d1 + d0*k) / a0)},
		}
	}
	k2 := k * k
	num := func(p [3]float64) [3]float64 {
		return [3]float64{
			p[0] + p[1]*k + p[2]*k2,
			-2*p[0] + 2*p[2]*k2,
			p[0] - p[1]*k + p[2]*k2,
		}
	}
	b := num(s.n)
	a := num(s.d)
	return TransferFunc[F]{
		B: []F{F(b[0] / a[0]), F(b[1] / a[0]), F(b[2] / a[0])},
		A: []F{1, F(a[1] / a[0]), F(a[2] / a[0])},
	}
}

func digitize[F Float](sections []analogSection, fc, fs float64) []TransferFunc[F] {
	k := math.Tan(math.Pi * fc / fs)
	out := make([]TransferFunc[F], len(sections))
	for i, s := range sections {
		out[i] = bilinear[F](s, k)
	}
	return out
}

// butterworthPrototype returns the unit-cutoff Butterworth sections. Pairs
// come first; odd orders end with a first-order section.
func butterworthPrototype(order int, highPass bool) []analogSection {
	sections := make([]analogSection, 0, (order+1)/2)
	for k := range order / 2 {
		theta := float64(2*k+1) * math.Pi / float64(2*order)
		q := 1 / (2 * math.Sin(theta))
		s := analogSection{d: [3]float64{1, 1 / q, 1}}
		if highPass {
			s.n = [3]float64{1, 0, 0}
		} else {
			s.n = [3]float64{0, 0, 1}
		}
		sections = append(sections, s)
	}
	if order%2 == 1 {
		s := analogSection{d: [3]float64{0, 1, 1}, first: true}
		if highPass {
			s.n = [3]float64{0, 1, 0}
		} else {
			s.n = [3]float64{0, 0, 1}
		}
		sections = append(sections, s)
	}
	return sections
}

// ButterworthLowPassSections designs an order-n Butterworth low-pass as
// second-order sections (plus one first-order section for odd n).
func ButterworthLowPassSections[F Float](order int, fc, fs float64) ([]TransferFunc[F], error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateCutoff(fc, fs); err != nil {
		return nil, err
	}
	return digitize[F](butterworthPrototype(order, false), fc, fs), nil
}

// ButterworthHighPassSections is the high-pass counterpart of
// ButterworthLowPassSections.
func ButterworthHighPassSections[F Float](order int, fc, fs float64) ([]TransferFunc[F], error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateCutoff(fc, fs); err != nil {
		return nil, err
	}
	return digitize[F](butterworthPrototype(order, true), fc, fs), nil
}

// ButterworthLowPass returns the expanded transfer function of
// ButterworthLowPassSections.
func ButterworthLowPass[F Float](order int, fc, fs float64) (TransferFunc[F], error) {
	sections, err := ButterworthLowPassSections[F](order, fc, fs)
	if err != nil {
		return TransferFunc[F]{}, err
	}
	return expand(sections), nil
}

// ButterworthHighPass returns the expanded transfer function of
// ButterworthHighPassSections.
func ButterworthHighPass[F Float](order int, fc, fs float64) (TransferFunc[F], error) {
	sections, err := ButterworthHighPassSections[F](order, fc, fs)
	if err != nil {
		return TransferFunc[F]{}, err
	}
	return expand(sections), nil
}

// ChebyshevLowPassSections designs an order-n Chebyshev type I low-pass with
// rippleDB of passband ripple. fc is the passband edge, where the gain
// leaves the ripple band. Odd orders have unit DC gain; even orders start at
// the bottom of the ripple, 1/√(1+ε²).
func ChebyshevLowPassSections[F Float](order int, rippleDB, fc, fs float64) ([]TransferFunc[F], error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateCutoff(fc, fs); err != nil {
		return nil, err
	}
	if !(rippleDB > 0) || math.IsInf(rippleDB, 0) {
		return nil, fmt.Errorf("%w: ripple %g dB must be positive", ErrInvalidParameter, rippleDB)
	}

	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	sections := make([]analogSection, 0, (order+1)/2)
	for k := range order / 2 {
		theta := float64(2*k+1) * math.Pi / float64(2*order)
		re := -sh * math.Sin(theta)
		im := ch * math.Cos(theta)
		mag2 := re*re + im*im
		sections = append(sections, analogSection{
			n: [3]float64{0, 0, mag2},
			d: [3]float64{1, -2 * re, mag2},
		})
	}
	if order%2 == 1 {
		sections = append(sections, analogSection{
			n:     [3]float64{0, 0, sh},
			d:     [3]float64{0, 1, sh},
			first: true,
		})
	} else {
		g := 1 / math.Sqrt(1+eps*eps)
		sections[0].n[2] *= g
	}
	return digitize[F](sections, fc, fs), nil
}

// ChebyshevLowPass returns the expanded transfer function of
// ChebyshevLowPassSections.
func ChebyshevLowPass[F Float](order int, rippleDB, fc, fs float64) (TransferFunc[F], error) {
	sections, err := ChebyshevLowPassSections[F](order, rippleDB, fc, fs)
	if err != nil {
		return TransferFunc[F]{}, err
	}
	return expand(sections), nil
}

// TrapezoidalIntegrator integrates with the trapezoidal rule:
// b = [Ts/2, Ts/2], a = [1, −1], Ts = 1/fs.
func TrapezoidalIntegrator[F Float](fs float64) (TransferFunc[F], error) {
	if err := validateSampleRate(fs); err != nil {
		return TransferFunc[F]{}, err
	}
	h := 1 / fs / 2
	return TransferFunc[F]{B: []F{F(h), F(h)}, A: []F{1, -1}}, nil
}

// FirstDifference differentiates with b = [1/Ts, −1/Ts], a = [1].
func FirstDifference[F Float](fs float64) (TransferFunc[F], error) {
	if err := validateSampleRate(fs); err != nil {
		return TransferFunc[F]{}, err
	}
	return TransferFunc[F]{B: []F{F(fs), F(-fs)}, A: []F{1}}, nil
}

// Polymul returns the product of two polynomials given by their
// coefficients. Either operand being empty yields an empty result.
func Polymul[F Float](p, q []F) []F {
	if len(p) == 0 || len(q) == 0 {
		return []F{}
	}
	out := make([]F, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			out[i+j] += a * b
		}
	}
	return out
}

func expand[F Float](sections []TransferFunc[F]) TransferFunc[F] {
	tf := TransferFunc[F]{B: []F{1}, A: []F{1}}
	for _, s := range sections {
		tf.B = Polymul(tf.B, s.B)
		tf.A = Polymul(tf.A, s.A)
	}
	return tf
}
