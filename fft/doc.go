// Package fft implements the iterative radix-2 Cooley-Tukey transform,
// spectrum helpers and FFT-based linear convolution.
//
// The forward transform uses exp(−2πi·kn/N); the inverse divides by N.
// Lengths must be powers of two: use ZeroPad or ZeroPadComplex to extend
// arbitrary input. Frequency bins are returned unshifted, with negative
// frequencies in the upper half.
//
// For repeated transforms of one size, a Plan precomputes twiddles and the
// bit-reversal table. For filtering long signals with a fixed kernel, a
// BlockConvolver runs overlap-save convolution on top of a real FFT.
package fft
