package fft

import (
	"math"
	"math/bits"

	"github.com/tphakala/go-numkit/internal/simdops"
)

// Float is the real sample constraint: float32 or float64.
type Float = simdops.Float

// Complex is the element constraint of the in-place transform.
type Complex interface {
	complex64 | complex128
}

// Transform runs the radix-2 FFT on x in place. The inverse transform
// divides every element by len(x). A length-1 input is returned unchanged.
//
// Twiddle factors are advanced in complex128 regardless of C.
func Transform[C Complex](x []C, inverse bool) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if !IsPowerOfTwo(n) {
		return ErrNotPowerOfTwo
	}
	if n == 1 {
		return nil
	}

	bitReverse(x)

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		theta := sign * 2 * math.Pi / float64(length)
		step := complex(math.Cos(theta), math.Sin(theta))
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			for j := range half {
				u := x[i+j]
				v := x[i+j+half] * C(w)
				x[i+j] = u + v
				x[i+j+half] = u - v
				w *= step
			}
		}
	}

	if inverse {
		scale := C(complex(1/float64(n), 0))
		for i := range x {
			x[i] *= scale
		}
	}
	return nil
}

// bitReverse swaps every index with its log2(n)-bit reversal.
func bitReverse[C Complex](x []C) {
	n := len(x)
	shift := bits.UintSize - bits.TrailingZeros(uint(n))
	for i := range n {
		j := int(bits.Reverse(uint(i)) >> shift)
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
}

// FFT returns the forward transform of x. x is not modified.
func FFT(x []complex128) ([]complex128, error) {
	out := append([]complex128(nil), x...)
	if err := Transform(out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// FFTReal widens x to complex and returns its forward transform.
func FFTReal[F Float](x []F) ([]complex128, error) {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(float64(v), 0)
	}
	if err := Transform(out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// IFFT returns the inverse transform of spectrum.
func IFFT(spectrum []complex128) ([]complex128, error) {
	out := append([]complex128(nil), spectrum...)
	if err := Transform(out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// IFFTReal returns the real part of the inverse transform. The caller is
// responsible for spectrum being conjugate-symmetric.
func IFFTReal(spectrum []complex128) ([]float64, error) {
	tmp, err := IFFT(spectrum)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(tmp))
	for i, c := range tmp {
		out[i] = real(c)
	}
	return out, nil
}
