// Package mathutil provides scalar special functions used by filter design.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
//
// The power series I₀(x) = Σ ((x/2)^k / k!)² is summed until the next term no
// longer changes the result. All terms are positive so there is no
// cancellation, and the series converges for every finite x.
func BesselI0(x float64) float64 {
	half := x / 2
	sum := 1.0
	term := 1.0

	for k := 1; k <= besselMaxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < besselSeriesTolerance*sum {
			break
		}
	}

	return sum
}

// KaiserBeta computes the Kaiser window β parameter from the desired
// stopband attenuation in decibels.
//
// Formula from Kaiser & Schafer:
//   - For att > 50 dB: β = 0.1102 * (att - 8.7)
//   - For 21 dB ≤ att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - For att < 21 dB: β = 0
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*d
	default:
		return 0
	}
}

// EstimateFilterLength estimates the number of taps a Kaiser-windowed FIR
// needs for the given attenuation (dB) and normalized transition bandwidth
// (fraction of the sample rate). The result is odd and clamped to
// [minFilterLength, maxFilterLength].
func EstimateFilterLength(attenuation, transitionBW float64) int {
	if transitionBW <= 0 {
		transitionBW = defaultTransitionBW
	}

	n := int(math.Ceil((attenuation-kaiserFilterLengthOffset)/
		(kaiserFilterLengthMultiplier*2*math.Pi*transitionBW))) + 1

	if n%2 == 0 {
		n++
	}
	return max(minFilterLength, min(n, maxFilterLength))
}

// Sinc returns the normalized sinc function sin(πx)/(πx) with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
