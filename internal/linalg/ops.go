package linalg

import (
	"math"

	"github.com/tphakala/go-numkit/internal/simdops"
)

// NormKind selects one of the four supported matrix norms.
type NormKind int

// Supported norms.
const (
	// NormFrobenius is sqrt(Σ a_ij²).
	NormFrobenius NormKind = iota
	// NormOne is the maximum absolute column sum.
	NormOne
	// NormInf is the maximum absolute row sum.
	NormInf
	// NormMaxAbs is max |a_ij|.
	NormMaxAbs
)

// String implements fmt.Stringer.
func (k NormKind) String() string {
	switch k {
	case NormFrobenius:
		return "frobenius"
	case NormOne:
		return "one"
	case NormInf:
		return "inf"
	case NormMaxAbs:
		return "max-abs"
	default:
		return "unknown"
	}
}

// Abs returns |x|.
func Abs[F simdops.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x in F.
func Sqrt[F simdops.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// MatMul computes dst = a·b for a r×k and b k×c. dst must not alias a or b.
func MatMul[F simdops.Float](dst, a, b []F, r, k, c int) {
	clear(dst[:r*c])
	for i := range r {
		row := dst[i*c : (i+1)*c]
		for p := range k {
			aip := a[i*k+p]
			if aip == 0 {
				continue
			}
			brow := b[p*c : (p+1)*c]
			for j := range c {
				row[j] += aip * brow[j]
			}
		}
	}
}

// MatVec computes dst = a·x for a r×c.
func MatVec[F simdops.Float](dst, a, x []F, r, c int) {
	dot := simdops.For[F]().DotProductUnsafe
	for i := range r {
		dst[i] = dot(a[i*c:(i+1)*c], x[:c])
	}
}

// Transpose writes the c×r transpose of the r×c matrix a into dst.
func Transpose[F simdops.Float](dst, a []F, r, c int) {
	for i := range r {
		for j := range c {
			dst[j*r+i] = a[i*c+j]
		}
	}
}

// Norm evaluates the norm selected by kind on the r×c matrix a.
func Norm[F simdops.Float](a []F, r, c int, kind NormKind) (F, error) {
	var out F
	switch kind {
	case NormFrobenius:
		out = Nrm2(a, 0, 1, r*c)
	case NormOne:
		for j := range c {
			var sum F
			for i := range r {
				sum += Abs(a[i*c+j])
			}
			out = max(out, sum)
		}
	case NormInf:
		for i := range r {
			var sum F
			for _, v := range a[i*c : (i+1)*c] {
				sum += Abs(v)
			}
			out = max(out, sum)
		}
	case NormMaxAbs:
		for _, v := range a[:r*c] {
			out = max(out, Abs(v))
		}
	default:
		return 0, ErrInvalidNorm
	}
	return out, nil
}

// SetIdentity writes the r×c identity (ones on the leading diagonal) into dst.
func SetIdentity[F simdops.Float](dst []F, r, c int) {
	clear(dst[:r*c])
	for i := range min(r, c) {
		dst[i*c+i] = 1
	}
}
