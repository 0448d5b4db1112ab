package fft

import (
	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-numkit/internal/simdops"
)

// Overlap-save constants.
const (
	// Smallest FFT block; larger kernels double it until it holds two kernels.
	minBlockFFTSize = 512

	// A real FFT of size N has N/2 + 1 unique coefficients.
	hermitianDivisor = 2
)

// BlockConvolver convolves long signals with a fixed kernel by the
// overlap-save method:
//  1. the signal is processed in FFT-sized blocks overlapping by kernelLen−1
//  2. each block yields fftSize−kernelLen+1 valid output samples
//  3. the first kernelLen−1 samples of each block are circular wrap and are discarded
//
// The kernel spectrum is computed once. Working buffers are preallocated, so
// ConvolveValid does not allocate; a BlockConvolver is therefore not safe for
// concurrent use.
type BlockConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int // valid output samples per block

	kernelFFT []complex128
	kernelLen int
	scale     float64 // 1/fftSize; gonum does not normalize the inverse

	signalBlock []float64
	signalFFT   []complex128
	productFFT  []complex128
	ifftResult  []float64
}

// NewBlockConvolver prepares overlap-save convolution with kernel.
func NewBlockConvolver(kernel []float64) (*BlockConvolver, error) {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil, ErrEmptyInput
	}

	fftSize := minBlockFFTSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}
	fftLen := fftSize/hermitianDivisor + 1

	f := fourier.NewFFT(fftSize)
	kernelPadded := make([]float64, fftSize)
	copy(kernelPadded, kernel)

	return &BlockConvolver{
		fft:         f,
		fftSize:     fftSize,
		blockSize:   fftSize - kernelLen + 1,
		kernelFFT:   f.Coefficients(nil, kernelPadded),
		kernelLen:   kernelLen,
		scale:       1.0 / float64(fftSize),
		signalBlock: make([]float64, fftSize),
		signalFFT:   make([]complex128, fftLen),
		productFFT:  make([]complex128, fftLen),
		ifftResult:  make([]float64, fftSize),
	}, nil
}

// KernelLen returns the kernel length.
func (c *BlockConvolver) KernelLen() int { return c.kernelLen }

// ValidLen returns the number of outputs ConvolveValid produces for an input
// of length n.
func (c *BlockConvolver) ValidLen(n int) int {
	return max(n-c.kernelLen+1, 0)
}

// ConvolveValid writes the fully overlapped part of the convolution:
// dst[m] = Σ_k kernel[k]·signal[m+K−1−k] for m < len(signal)−K+1, where K is
// the kernel length. dst must hold ValidLen(len(signal)) samples.
func (c *BlockConvolver) ConvolveValid(dst, signal []float64) {
	signalLen := len(signal)
	outputLen := c.ValidLen(signalLen)
	if outputLen == 0 || len(dst) < outputLen {
		return
	}

	overlap := c.kernelLen - 1
	scale := simdops.Float64Ops().Scale
	for outIdx := 0; outIdx < outputLen; {
		clear(c.signalBlock)
		copyLen := min(c.fftSize, signalLen-outIdx)
		copy(c.signalBlock, signal[outIdx:outIdx+copyLen])

		c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
		c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
		c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)
		scale(c.ifftResult, c.ifftResult, c.scale)

		valid := min(c.blockSize, outputLen-outIdx)
		copy(dst[outIdx:outIdx+valid], c.ifftResult[overlap:overlap+valid])
		outIdx += valid
	}
}

// Convolve returns the full linear convolution of signal with the kernel,
// of length len(signal)+K−1.
func (c *BlockConvolver) Convolve(signal []float64) []float64 {
	if len(signal) == 0 {
		return nil
	}
	overlap := c.kernelLen - 1
	padded := make([]float64, len(signal)+2*overlap)
	copy(padded[overlap:], signal)

	out := make([]float64, len(signal)+overlap)
	c.ConvolveValid(out, padded)
	return out
}
