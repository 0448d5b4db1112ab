// Package numkit is a numeric toolkit for signal processing and small dense
// linear algebra in pure Go.
//
// The building blocks live in sub-packages:
//
//   - [github.com/tphakala/go-numkit/matrix]: dynamic dense matrices with LU,
//     QR, SVD, inverse, determinant and norms
//   - [github.com/tphakala/go-numkit/matrix/fixed]: the same operations on
//     stack-allocated matrices of up to 4×4 with compile-time dimensions
//   - [github.com/tphakala/go-numkit/fft]: radix-2 FFT, spectra and
//     FFT-based convolution
//   - [github.com/tphakala/go-numkit/filter]: FIR and IIR filters, windowed
//     sinc and bilinear-transform designs, stability analysis
//
// SIMD kernels come from github.com/tphakala/simd; gonum is used for
// eigenvalues and interoperability.
//
// # Quick Start
//
// One-shot helpers cover the common cases:
//
//	y, err := numkit.FilterSignal(x, &numkit.Config{
//	    Kind:       numkit.KindButterworthLowPass,
//	    SampleRate: 48000,
//	    Cutoff:     1000,
//	    Order:      4,
//	})
//
//	freq, err := numkit.PeakFrequency(x, 48000)
//
//	solution, err := numkit.SolveLinear([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//
// For streaming, build a filter once and feed it blocks:
//
//	f, err := numkit.NewFilter[float32](cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for chunk := range audioChunks {
//	    writeOutput(f.Process(chunk))
//	}
//
// Multi-channel audio gets one independent filter per channel with
// [NewMultiChannel]; set Config.EnableParallel to run channels on separate
// goroutines.
//
// # Errors
//
// Every error returned by the toolkit belongs to one of two categories:
//
//   - [ErrPrecondition]: the caller passed a wrong shape, length or parameter
//   - [ErrNoResult]: the input was valid but the computation has no answer,
//     such as a singular matrix
//
// Test with errors.Is against the category or against the precise sentinel
// exported by the sub-package.
//
// # Concurrency
//
// Matrices, transforms and filters carry no shared state. Distinct values may
// be used from different goroutines; a single filter must not be.
package numkit
