package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
)

// ToGonum returns a float64 gonum copy of m.
func (m *Dense[T]) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum copies any gonum matrix into a Dense[T].
func FromGonum[T Float](a mat.Matrix) (*Dense[T], error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, numerr.Op(linalg.OpFromGonum, linalg.ErrBadShape)
	}
	m := NewDense[T](r, c)
	for i := range r {
		for j := range c {
			m.data[i*c+j] = T(a.At(i, j))
		}
	}
	return m, nil
}
