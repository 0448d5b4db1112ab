package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-numkit/internal/mathutil"
)

// Window selects a tapering window for FIR design.
type Window int

const (
	// WindowRectangular leaves the coefficients unchanged.
	WindowRectangular Window = iota
	// WindowHamming is 0.54 − 0.46·cos(2πn/(N−1)).
	WindowHamming
	// WindowHann is 0.5 − 0.5·cos(2πn/(N−1)).
	WindowHann
	// WindowBlackman is 0.42 − 0.5·cos(2πn/(N−1)) + 0.08·cos(4πn/(N−1)).
	WindowBlackman
	// WindowKaiser is I₀(β·√(1−x²))/I₀(β).
	WindowKaiser
)

var windowNames = [...]string{
	WindowRectangular: "rectangular",
	WindowHamming:     "hamming",
	WindowHann:        "hann",
	WindowBlackman:    "blackman",
	WindowKaiser:      "kaiser",
}

// String returns the lower-case window name.
func (w Window) String() string {
	if w < 0 || int(w) >= len(windowNames) {
		return "unknown"
	}
	return windowNames[w]
}

// ParseWindow maps a window name to its Window value.
func ParseWindow(name string) (Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range windowNames {
		if n == name {
			return Window(i), nil
		}
	}
	return WindowRectangular, fmt.Errorf("%w: unknown window %q", ErrInvalidParameter, name)
}

// KaiserWindow generates a Kaiser window of the given length and β.
//
// Larger β trades main lobe width for sidelobe attenuation; see
// mathutil.KaiserBeta for the β that reaches a target attenuation.
// The window is symmetric and peaks at 1 in the center.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	// w[n] = I₀(β·√(1 − ((n − α)/α)²)) / I₀(β), α = (N−1)/2
	alpha := float64(length-1) / halfOrder
	i0Beta := mathutil.BesselI0(beta)
	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1-x*x))) / i0Beta
	}
	return window
}

// MakeWindow returns the length-n window w. beta is only used by
// WindowKaiser; zero selects a default of 8.6.
func MakeWindow(w Window, n int, beta float64) []float64 {
	if n < 1 {
		return []float64{}
	}
	if w == WindowKaiser {
		if beta == 0 {
			beta = defaultKaiserBeta
		}
		return KaiserWindow(n, beta)
	}

	out := make([]float64, n)
	if n == 1 || w == WindowRectangular {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	step := twoPi / float64(n-1)
	for i := range out {
		c := math.Cos(step * float64(i))
		switch w {
		case WindowHamming:
			out[i] = hammingA0 - hammingA1*c
		case WindowHann:
			out[i] = hannA0 - hannA0*c
		case WindowBlackman:
			out[i] = blackmanA0 - blackmanA1*c + blackmanA2*math.Cos(2*step*float64(i))
		default:
			out[i] = 1
		}
	}
	return out
}

// ApplyWindow returns a copy of coeffs multiplied by window w.
func ApplyWindow[F Float](coeffs []F, w Window, beta float64) []F {
	win := MakeWindow(w, len(coeffs), beta)
	out := make([]F, len(coeffs))
	for i, c := range coeffs {
		out[i] = c * F(win[i])
	}
	return out
}
