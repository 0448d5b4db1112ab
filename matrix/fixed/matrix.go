package fixed

import (
	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
	"github.com/tphakala/go-numkit/matrix"
)

// Float is the element type constraint: float32 or float64.
type Float = matrix.Float

// Matrix is an R×C row-major matrix stored inline.
// The zero value is the zero matrix.
type Matrix[T Float, R, C Dim] struct {
	data [maxDim * maxDim]T
}

// Common shapes.
type (
	Mat2[T Float] = Matrix[T, D2, D2]
	Mat3[T Float] = Matrix[T, D3, D3]
	Mat4[T Float] = Matrix[T, D4, D4]
	Vec2[T Float] = Matrix[T, D2, D1]
	Vec3[T Float] = Matrix[T, D3, D1]
	Vec4[T Float] = Matrix[T, D4, D1]
)

// New returns the matrix holding vals in row-major order. It panics unless
// len(vals) is R·C.
func New[T Float, R, C Dim](vals ...T) Matrix[T, R, C] {
	r, c := dims[R, C]()
	if len(vals) != r*c {
		panic("fixed: wrong number of elements")
	}
	var m Matrix[T, R, C]
	copy(m.data[:], vals)
	return m
}

// Identity returns the N×N identity.
func Identity[T Float, N Dim]() Matrix[T, N, N] {
	var m Matrix[T, N, N]
	n, _ := dims[N, N]()
	linalg.SetIdentity(m.data[:], n, n)
	return m
}

// ConvertTo returns m with every element converted to U.
func ConvertTo[U, T Float, R, C Dim](m Matrix[T, R, C]) Matrix[U, R, C] {
	var out Matrix[U, R, C]
	for i, v := range m.elems() {
		out.data[i] = U(v)
	}
	return out
}

// FromDense copies a dynamic matrix of matching shape.
func FromDense[T Float, R, C Dim](d *matrix.Dense[T]) (Matrix[T, R, C], error) {
	var m Matrix[T, R, C]
	r, c := dims[R, C]()
	if dr, dc := d.Dims(); dr != r || dc != c {
		return m, numerr.Op(linalg.OpNew, linalg.ErrDimensionMismatch)
	}
	copy(m.data[:], d.RawData())
	return m, nil
}

func (m *Matrix[T, R, C]) elems() []T {
	r, c := dims[R, C]()
	return m.data[:r*c]
}

// Rows returns R.
func (m Matrix[T, R, C]) Rows() int {
	r, _ := dims[R, C]()
	return r
}

// Cols returns C.
func (m Matrix[T, R, C]) Cols() int {
	_, c := dims[R, C]()
	return c
}

// NumElements returns R·C.
func (m Matrix[T, R, C]) NumElements() int {
	r, c := dims[R, C]()
	return r * c
}

// At returns the element at row r, column c.
func (m Matrix[T, R, C]) At(r, c int) T {
	rows, cols := dims[R, C]()
	linalg.CheckIndex(r, c, rows, cols)
	return m.data[r*cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix[T, R, C]) Set(r, c int, v T) {
	rows, cols := dims[R, C]()
	linalg.CheckIndex(r, c, rows, cols)
	m.data[r*cols+c] = v
}

// Fill sets every element to v.
func (m *Matrix[T, R, C]) Fill(v T) {
	e := m.elems()
	for i := range e {
		e[i] = v
	}
}

// Sum returns the sum of all elements.
func (m Matrix[T, R, C]) Sum() T {
	var s T
	for _, v := range m.elems() {
		s += v
	}
	return s
}

// Min returns the smallest element.
func (m Matrix[T, R, C]) Min() T {
	e := m.elems()
	out := e[0]
	for _, v := range e[1:] {
		out = min(out, v)
	}
	return out
}

// Max returns the largest element.
func (m Matrix[T, R, C]) Max() T {
	e := m.elems()
	out := e[0]
	for _, v := range e[1:] {
		out = max(out, v)
	}
	return out
}

// Norm evaluates the selected matrix norm.
func (m Matrix[T, R, C]) Norm(kind matrix.NormKind) (T, error) {
	r, c := dims[R, C]()
	n, err := linalg.Norm(m.data[:], r, c, kind)
	if err != nil {
		return 0, numerr.Op(linalg.OpNorm, err)
	}
	return n, nil
}

// Add returns m + b.
func (m Matrix[T, R, C]) Add(b Matrix[T, R, C]) Matrix[T, R, C] {
	for i, v := range b.elems() {
		m.data[i] += v
	}
	return m
}

// Sub returns m − b.
func (m Matrix[T, R, C]) Sub(b Matrix[T, R, C]) Matrix[T, R, C] {
	for i, v := range b.elems() {
		m.data[i] -= v
	}
	return m
}

// Scale returns s·m.
func (m Matrix[T, R, C]) Scale(s T) Matrix[T, R, C] {
	e := m.elems()
	for i := range e {
		e[i] *= s
	}
	return m
}

// Transpose returns mᵀ.
func (m Matrix[T, R, C]) Transpose() Matrix[T, C, R] {
	var out Matrix[T, C, R]
	r, c := dims[R, C]()
	linalg.Transpose(out.data[:], m.data[:], r, c)
	return out
}

// Mul returns a·b. Operands with different inner dimensions do not compile.
func Mul[T Float, R, K, C Dim](a Matrix[T, R, K], b Matrix[T, K, C]) Matrix[T, R, C] {
	var out Matrix[T, R, C]
	r, k := dims[R, K]()
	_, c := dims[K, C]()
	linalg.MatMul(out.data[:], a.data[:], b.data[:], r, k, c)
	return out
}

// Equal reports whether all elements are equal.
func (m Matrix[T, R, C]) Equal(b Matrix[T, R, C]) bool {
	return m == b
}

// EqualApprox reports whether every pair of elements differs by at most tol.
func (m Matrix[T, R, C]) EqualApprox(b Matrix[T, R, C], tol T) bool {
	be := b.elems()
	for i, v := range m.elems() {
		if !(linalg.Abs(v-be[i]) <= tol) {
			return false
		}
	}
	return true
}

// ToDense copies m into a dynamic matrix.
func (m Matrix[T, R, C]) ToDense() *matrix.Dense[T] {
	r, c := dims[R, C]()
	d, _ := matrix.NewDenseFrom(r, c, m.data[:r*c])
	return d
}
