package linalg

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/tphakala/go-numkit/internal/simdops"
)

// Nrm2 returns the Euclidean norm of the n elements x[off], x[off+stride], …
// The sum of squares is kept in scaled form, so the result neither
// underflows nor overflows unless the norm itself is out of range.
func Nrm2[F simdops.Float](x []F, off, stride, n int) F {
	if n <= 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		return F(blas64.Nrm2(blas64.Vector{N: n, Data: xs[off:], Inc: stride}))
	case []float32:
		return F(blas32.Nrm2(blas32.Vector{N: n, Data: xs[off:], Inc: stride}))
	}
	return 0
}
