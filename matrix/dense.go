package matrix

import (
	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
	"github.com/tphakala/go-numkit/internal/simdops"
)

// Float is the element type constraint: float32 or float64.
type Float = simdops.Float

// Dense is a row-major matrix that owns its storage.
type Dense[T Float] struct {
	rows, cols int
	data       []T
}

// NewDense returns a zero-filled r×c matrix. It panics if r or c is not positive.
func NewDense[T Float](r, c int) *Dense[T] {
	if r <= 0 || c <= 0 {
		panic("matrix: dimensions must be > 0")
	}
	return &Dense[T]{rows: r, cols: c, data: make([]T, r*c)}
}

// NewDenseFrom returns an r×c matrix backed by a copy of data, given in
// row-major order.
func NewDenseFrom[T Float](r, c int, data []T) (*Dense[T], error) {
	if r <= 0 || c <= 0 || len(data) != r*c {
		return nil, numerr.Op(linalg.OpNew, linalg.ErrBadShape)
	}
	m := NewDense[T](r, c)
	copy(m.data, data)
	return m, nil
}

// FromRows builds a matrix from equal-length rows.
func FromRows[T Float](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, numerr.Op(linalg.OpNew, linalg.ErrBadShape)
	}
	c := len(rows[0])
	m := NewDense[T](len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, numerr.Op(linalg.OpNew, linalg.ErrBadShape)
		}
		copy(m.data[i*c:], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Float](n int) *Dense[T] {
	m := NewDense[T](n, n)
	linalg.SetIdentity(m.data, n, n)
	return m
}

// Convert returns a copy of m with every element converted to U.
func Convert[U, T Float](m *Dense[T]) *Dense[U] {
	out := NewDense[U](m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = U(v)
	}
	return out
}

// Dims returns the number of rows and columns.
func (m *Dense[T]) Dims() (r, c int) { return m.rows, m.cols }

// NumRows returns the number of rows.
func (m *Dense[T]) NumRows() int { return m.rows }

// NumCols returns the number of columns.
func (m *Dense[T]) NumCols() int { return m.cols }

// NumElements returns rows·cols.
func (m *Dense[T]) NumElements() int { return len(m.data) }

// At returns the element at row r, column c.
func (m *Dense[T]) At(r, c int) T {
	linalg.CheckIndex(r, c, m.rows, m.cols)
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c.
func (m *Dense[T]) Set(r, c int, v T) {
	linalg.CheckIndex(r, c, m.rows, m.cols)
	m.data[r*m.cols+c] = v
}

// Row returns a copy of row r.
func (m *Dense[T]) Row(r int) []T {
	linalg.CheckIndex(r, 0, m.rows, m.cols)
	return append([]T(nil), m.data[r*m.cols:(r+1)*m.cols]...)
}

// Col returns a copy of column c.
func (m *Dense[T]) Col(c int) []T {
	linalg.CheckIndex(0, c, m.rows, m.cols)
	out := make([]T, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+c]
	}
	return out
}

// RawData returns the row-major backing slice. Writes through it modify m.
func (m *Dense[T]) RawData() []T { return m.data }

// Clone returns a deep copy of m.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{rows: m.rows, cols: m.cols, data: append([]T(nil), m.data...)}
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Equal reports whether a and b have the same shape and elements.
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	return m.EqualApprox(b, 0)
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func (m *Dense[T]) EqualApprox(b *Dense[T], tol T) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i, v := range m.data {
		if !(linalg.Abs(v-b.data[i]) <= tol) {
			return false
		}
	}
	return true
}
