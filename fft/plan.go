package fft

import (
	"math"
	"math/bits"
)

// Plan holds the bit-reversal table and twiddle factors of a fixed-size
// transform. Twiddles are evaluated directly rather than by recurrence, and
// Forward and Inverse do not allocate. A Plan is safe for concurrent use.
type Plan[C Complex] struct {
	n        int
	rev      []int
	twiddles []C // exp(−2πi·k/n) for k < n/2
	inverse  []C // conjugates of twiddles
}

// NewPlan prepares transforms of length n.
func NewPlan[C Complex](n int) (*Plan[C], error) {
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if !IsPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}

	p := &Plan[C]{
		n:        n,
		rev:      make([]int, n),
		twiddles: make([]C, n/2),
		inverse:  make([]C, n/2),
	}
	if n > 1 {
		shift := bits.UintSize - bits.TrailingZeros(uint(n))
		for i := range n {
			p.rev[i] = int(bits.Reverse(uint(i)) >> shift)
		}
	}
	for k := range p.twiddles {
		s, c := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		p.twiddles[k] = C(complex(c, s))
		p.inverse[k] = C(complex(c, -s))
	}
	return p, nil
}

// Len returns the transform length.
func (p *Plan[C]) Len() int { return p.n }

// Forward transforms x in place.
func (p *Plan[C]) Forward(x []C) error {
	return p.run(x, false)
}

// Inverse transforms x in place and divides by the length.
func (p *Plan[C]) Inverse(x []C) error {
	return p.run(x, true)
}

func (p *Plan[C]) run(x []C, inverse bool) error {
	if len(x) != p.n {
		return ErrLengthMismatch
	}
	n := p.n
	tw := p.twiddles
	if inverse {
		tw = p.inverse
	}
	for i, j := range p.rev {
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		stride := n / length
		for i := 0; i < n; i += length {
			for j := range half {
				w := tw[j*stride]
				u := x[i+j]
				v := x[i+j+half] * w
				x[i+j] = u + v
				x[i+j+half] = u - v
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
