package matrix

import (
	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// NormKind selects a matrix norm.
type NormKind = linalg.NormKind

// Supported norms.
const (
	NormFrobenius = linalg.NormFrobenius
	NormOne       = linalg.NormOne
	NormInf       = linalg.NormInf
	NormMaxAbs    = linalg.NormMaxAbs
)

// Mul returns m·b. The inner dimensions must agree.
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if m.cols != b.rows {
		return nil, numerr.Op(linalg.OpMul, linalg.ErrDimensionMismatch)
	}
	out := NewDense[T](m.rows, b.cols)
	linalg.MatMul(out.data, m.data, b.data, m.rows, m.cols, b.cols)
	return out, nil
}

// MulVec returns m·x.
func (m *Dense[T]) MulVec(x *Vector[T]) (*Vector[T], error) {
	if m.cols != x.Len() {
		return nil, numerr.Op(linalg.OpMulVec, linalg.ErrDimensionMismatch)
	}
	out := NewVector[T](m.rows)
	linalg.MatVec(out.data, m.data, x.data, m.rows, m.cols)
	return out, nil
}

// Add returns m + b.
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) {
	return m.addSub(b, 1, linalg.OpAdd)
}

// Sub returns m − b.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) {
	return m.addSub(b, -1, linalg.OpSub)
}

func (m *Dense[T]) addSub(b *Dense[T], sign T, op string) (*Dense[T], error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, numerr.Op(op, linalg.ErrDimensionMismatch)
	}
	out := NewDense[T](m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v + sign*b.data[i]
	}
	return out, nil
}

// Scale returns s·m.
func (m *Dense[T]) Scale(s T) *Dense[T] {
	out := NewDense[T](m.rows, m.cols)
	simdops.For[T]().Scale(out.data, m.data, s)
	return out
}

// Transpose returns mᵀ.
func (m *Dense[T]) Transpose() *Dense[T] {
	out := NewDense[T](m.cols, m.rows)
	linalg.Transpose(out.data, m.data, m.rows, m.cols)
	return out
}

// Sum returns the sum of all elements.
func (m *Dense[T]) Sum() T {
	return simdops.For[T]().Sum(m.data)
}

// Min returns the smallest element.
func (m *Dense[T]) Min() T {
	out := m.data[0]
	for _, v := range m.data[1:] {
		out = min(out, v)
	}
	return out
}

// Max returns the largest element.
func (m *Dense[T]) Max() T {
	out := m.data[0]
	for _, v := range m.data[1:] {
		out = max(out, v)
	}
	return out
}

// Trace returns the sum of the diagonal of a square matrix.
func (m *Dense[T]) Trace() (T, error) {
	if m.rows != m.cols {
		return 0, numerr.Op(linalg.OpTrace, linalg.ErrNotSquare)
	}
	var sum T
	for i := range m.rows {
		sum += m.data[i*m.cols+i]
	}
	return sum, nil
}

// Norm evaluates the selected matrix norm.
func (m *Dense[T]) Norm(kind NormKind) (T, error) {
	n, err := linalg.Norm(m.data, m.rows, m.cols, kind)
	if err != nil {
		return 0, numerr.Op(linalg.OpNorm, err)
	}
	return n, nil
}
