package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-numkit/internal/delay"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// Stability is the verdict of a pole analysis.
type Stability int

const (
	// StabilityUnknown means the poles could not be located.
	StabilityUnknown Stability = iota
	// StabilityStable means every pole lies strictly inside the unit circle.
	StabilityStable
	// StabilityUnstable means at least one pole lies on or outside the unit circle.
	StabilityUnstable
)

// String returns the verdict name.
func (s Stability) String() string {
	switch s {
	case StabilityStable:
		return "stable"
	case StabilityUnstable:
		return "unstable"
	default:
		return "unknown"
	}
}

// IIR is an infinite impulse response filter in direct form I.
//
// Input and output histories live in separate delay lines. Both feed-forward
// and feedback sums are SIMD dot products against reversed coefficient
// copies, so Filter does not allocate.
type IIR[F Float] struct {
	b, a   []F
	rb, ra []F // rb[j] = b[M−j], ra[j] = a[N−j] for j < N
	a0     F
	x, y   *delay.Line[F]
	dot    func(a, b []F) F
}

// NewIIR creates a filter from numerator b and denominator a. It returns
// ErrInvalidDenominator when a is empty or a[0] is zero. Both slices are
// copied and the state is zeroed.
func NewIIR[F Float](b, a []F) (*IIR[F], error) {
	if len(a) == 0 || a[0] == 0 {
		return nil, ErrInvalidDenominator
	}
	f := &IIR[F]{
		b:   append([]F(nil), b...),
		a:   append([]F(nil), a...),
		a0:  a[0],
		dot: simdops.For[F]().DotProductUnsafe,
	}

	m := len(b)
	f.rb = make([]F, m)
	for j := range m {
		f.rb[j] = b[m-1-j]
	}
	n := len(a) - 1
	f.ra = make([]F, n)
	for j := range n {
		f.ra[j] = a[n-j]
	}

	f.x = delay.NewLine[F](m)
	f.y = delay.NewLine[F](n)
	return f, nil
}

// Filter consumes x[n] and returns y[n].
func (f *IIR[F]) Filter(x F) F {
	var acc F
	if len(f.rb) > 0 {
		f.x.Push(x)
		acc = f.dot(f.rb, f.x.Window())
	}
	if len(f.ra) > 0 {
		acc -= f.dot(f.ra, f.y.Window())
	}
	y := acc / f.a0
	f.y.Push(y)
	return y
}

// Process filters x sample by sample and returns the outputs in a new slice.
func (f *IIR[F]) Process(x []F) []F {
	out := make([]F, len(x))
	for i, v := range x {
		out[i] = f.Filter(v)
	}
	return out
}

// ProcessTo filters src into dst, which must have the same length.
func (f *IIR[F]) ProcessTo(dst, src []F) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src has %d", ErrSizeMismatch, len(dst), len(src))
	}
	for i, v := range src {
		dst[i] = f.Filter(v)
	}
	return nil
}

// Reset zeroes both delay lines.
func (f *IIR[F]) Reset() {
	f.x.Reset()
	f.y.Reset()
}

// Coefficients returns copies of the numerator and denominator.
func (f *IIR[F]) Coefficients() (b, a []F) {
	return append([]F(nil), f.b...), append([]F(nil), f.a...)
}

// Order returns max(M, N), the larger polynomial degree.
func (f *IIR[F]) Order() int {
	return max(len(f.b)-1, len(f.a)-1, 0)
}

// FrequencyResponse evaluates B(e^jω)/A(e^jω) at freq Hz for sample rate fs.
func (f *IIR[F]) FrequencyResponse(freq, fs float64) complex128 {
	w := omega(freq, fs)
	den := polyResponse(f.a, w)
	if den == 0 {
		return cmplx.Inf()
	}
	return polyResponse(f.b, w) / den
}

// Poles returns the roots of z^N·A(z). The second result is false when the
// poles could not be computed.
func (f *IIR[F]) Poles() ([]complex128, bool) {
	return denominatorRoots(f.a)
}

// Stability reports whether every pole lies strictly inside the unit circle.
func (f *IIR[F]) Stability() Stability {
	poles, ok := f.Poles()
	if !ok {
		return StabilityUnknown
	}
	return classify(poles)
}

// IsStable reports whether Stability returned StabilityStable.
func (f *IIR[F]) IsStable() bool {
	return f.Stability() == StabilityStable
}

func classify(poles []complex128) Stability {
	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			return StabilityUnstable
		}
	}
	return StabilityStable
}

// denominatorRoots finds the roots of a[0]z^N + a[1]z^(N−1) + ... + a[N].
// Orders one and two use closed forms; higher orders take the eigenvalues
// of the companion matrix.
func denominatorRoots[F Float](a []F) ([]complex128, bool) {
	if len(a) == 0 || a[0] == 0 || !isFinite(a) {
		return nil, false
	}
	n := len(a) - 1
	a0 := float64(a[0])
	c := make([]float64, n)
	for k := range n {
		c[k] = float64(a[k+1]) / a0
	}

	switch {
	case n == 0:
		return []complex128{}, true
	case n == 1:
		return []complex128{complex(-c[0], 0)}, true
	case n == 2:
		disc := cmplx.Sqrt(complex(c[0]*c[0]-discriminantFactor*c[1], 0))
		p := complex(-c[0], 0)
		return []complex128{(p + disc) / quadraticDivisor, (p - disc) / quadraticDivisor}, true
	case n > maxEigenOrder:
		return nil, false
	}

	companion := mat.NewDense(n, n, nil)
	for k := range n {
		companion.Set(0, k, -c[k])
	}
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if !eig.Factorize(companion, mat.EigenNone) {
		return nil, false
	}
	roots := eig.Values(nil)
	for _, r := range roots {
		if cmplx.IsNaN(r) || math.IsInf(real(r), 0) || math.IsInf(imag(r), 0) {
			return nil, false
		}
	}
	return roots, true
}
