package fft

import (
	"math"
	"math/bits"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Magnitude returns |c| for every element.
func Magnitude(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		out[i] = cmplx.Abs(c)
	}
	return out
}

// Phase returns arg(c) in (−π, π] for every element.
func Phase(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		p := cmplx.Phase(c)
		if p == -math.Pi {
			p = math.Pi
		}
		out[i] = p
	}
	return out
}

// Power returns |c|² for every element.
func Power(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		re, im := real(c), imag(c)
		out[i] = re*re + im*im
	}
	return out
}

// FrequencyBins returns the frequency in Hz of each bin of an n-point
// transform at sample rate fs: k·fs/n for k ≤ n/2 and (k−n)·fs/n above.
func FrequencyBins(n int, fs float64) []float64 {
	out := make([]float64, n)
	for k := range n {
		if k <= n/2 {
			out[k] = float64(k) * fs / float64(n)
		} else {
			out[k] = float64(k-n) * fs / float64(n)
		}
	}
	return out
}

// IsPowerOfTwo reports whether n ≥ 1 is a power of two.
func IsPowerOfTwo(n int) bool {
	return n >= 1 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two ≥ n, and 1 for n ≤ 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ZeroPad returns x extended with trailing zeros to the next power of two.
// The result is always a fresh slice.
func ZeroPad[F Float](x []F) []F {
	out := make([]F, NextPowerOfTwo(len(x)))
	copy(out, x)
	return out
}

// ZeroPadComplex is ZeroPad for complex input.
func ZeroPadComplex(x []complex128) []complex128 {
	out := make([]complex128, NextPowerOfTwo(len(x)))
	copy(out, x)
	return out
}

// PeakBin returns the index of the largest magnitude among bins 0..n/2, or
// among 1..n/2 when skipDC is set. It returns -1 when there is no such bin.
func PeakBin(mag []float64, skipDC bool) int {
	hi := len(mag)/2 + 1
	lo := 0
	if skipDC {
		lo = 1
	}
	if hi <= lo || hi > len(mag) {
		return -1
	}
	return lo + floats.MaxIdx(mag[lo:hi])
}
