package matrix

import (
	"math"

	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// Vector is a contiguous owning buffer of T.
type Vector[T Float] struct {
	data []T
}

// NewVector returns a zero-filled vector of length n. It panics if n < 0.
func NewVector[T Float](n int) *Vector[T] {
	if n < 0 {
		panic("matrix: negative vector length")
	}
	return &Vector[T]{data: make([]T, n)}
}

// NewVectorFrom returns a vector holding a copy of data.
func NewVectorFrom[T Float](data []T) *Vector[T] {
	return &Vector[T]{data: append([]T{}, data...)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i.
func (v *Vector[T]) At(i int) T {
	linalg.CheckVectorIndex(i, len(v.data))
	return v.data[i]
}

// Set stores x at element i.
func (v *Vector[T]) Set(i int, x T) {
	linalg.CheckVectorIndex(i, len(v.data))
	v.data[i] = x
}

// RawData returns the backing slice.
func (v *Vector[T]) RawData() []T { return v.data }

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] { return NewVectorFrom(v.data) }

// Dot returns the inner product of v and b.
func (v *Vector[T]) Dot(b *Vector[T]) (T, error) {
	if len(v.data) != len(b.data) {
		return 0, numerr.Op(linalg.OpDot, linalg.ErrDimensionMismatch)
	}
	if len(v.data) == 0 {
		return 0, nil
	}
	return simdops.For[T]().DotProductUnsafe(v.data, b.data), nil
}

// Scale returns s·v.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out := NewVector[T](len(v.data))
	simdops.For[T]().Scale(out.data, v.data, s)
	return out
}

// Norm returns the p-norm (Σ|v_i|^p)^(1/p). p = math.Inf(1) gives the
// largest magnitude and p = 0 the number of non-zero elements. A negative
// or NaN p is a precondition error.
func (v *Vector[T]) Norm(p float64) (T, error) {
	switch {
	case p < 0 || math.IsNaN(p):
		return 0, numerr.Op(linalg.OpNorm, linalg.ErrInvalidNorm)
	case p == 0:
		var n int
		for _, x := range v.data {
			if x != 0 {
				n++
			}
		}
		return T(n), nil
	case math.IsInf(p, 1):
		var out T
		for _, x := range v.data {
			out = max(out, linalg.Abs(x))
		}
		return out, nil
	case p == 1:
		var sum T
		for _, x := range v.data {
			sum += linalg.Abs(x)
		}
		return sum, nil
	case p == 2:
		return linalg.Nrm2(v.data, 0, 1, len(v.data)), nil
	default:
		var sum float64
		for _, x := range v.data {
			sum += math.Pow(math.Abs(float64(x)), p)
		}
		return T(math.Pow(sum, 1/p)), nil
	}
}
