package matrix

import (
	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
)

// LUResult holds A[P] = L·U for an r×c matrix with K = min(r, c).
type LUResult[T Float] struct {
	L *Dense[T] // r×K, unit lower-trapezoidal
	U *Dense[T] // K×c, upper-trapezoidal
	P []int     // logical row i is row P[i] of A

	packed *Dense[T]
	swaps  int
}

// QRResult holds the economy factorization A = Q·R.
type QRResult[T Float] struct {
	Q *Dense[T] // r×c, orthonormal columns
	R *Dense[T] // c×c, upper-triangular, non-negative diagonal
}

// SVDResult holds A = U·Σ·Vᵀ.
type SVDResult[T Float] struct {
	U *Dense[T] // r×r, orthogonal
	S *Dense[T] // r×c, diagonal, non-increasing, non-negative
	V *Dense[T] // c×c, orthogonal
}

// Values returns the min(r,c) singular values in descending order.
func (s *SVDResult[T]) Values() []T {
	r, c := s.S.Dims()
	out := make([]T, min(r, c))
	for i := range out {
		out[i] = s.S.At(i, i)
	}
	return out
}

// LU factors m with partial pivoting. Pivots smaller than 1e-12 (1e-6 for
// float32) yield ErrSingular.
func (m *Dense[T]) LU() (*LUResult[T], error) {
	packed := m.Clone()
	perm := make([]int, m.rows)
	swaps, err := linalg.LUInPlace(packed.data, m.rows, m.cols, perm)
	if err != nil {
		return nil, numerr.Op(linalg.OpLU, err)
	}

	k := min(m.rows, m.cols)
	l := NewDense[T](m.rows, k)
	u := NewDense[T](k, m.cols)
	linalg.SplitLU(packed.data, m.rows, m.cols, l.data, k, u.data, k)
	return &LUResult[T]{L: l, U: u, P: perm, packed: packed, swaps: swaps}, nil
}

// Det returns the determinant of the factored square matrix.
func (f *LUResult[T]) Det() (T, error) {
	n, c := f.packed.Dims()
	if n != c {
		return 0, numerr.Op(linalg.OpDet, linalg.ErrNotSquare)
	}
	return linalg.DetLU(f.packed.data, n, f.swaps), nil
}

// Solve returns x with A·x = b for the factored square matrix.
func (f *LUResult[T]) Solve(b *Vector[T]) (*Vector[T], error) {
	n, c := f.packed.Dims()
	if n != c {
		return nil, numerr.Op(linalg.OpSolve, linalg.ErrNotSquare)
	}
	if b.Len() != n {
		return nil, numerr.Op(linalg.OpSolve, linalg.ErrDimensionMismatch)
	}
	x := NewVector[T](n)
	linalg.LUSolve(f.packed.data, n, f.P, b.data, x.data, make([]T, n))
	return x, nil
}

// QR computes the economy Householder factorization. m must have at least as
// many rows as columns.
func (m *Dense[T]) QR() (*QRResult[T], error) {
	if m.rows < m.cols {
		return nil, numerr.Op(linalg.OpQR, linalg.ErrBadShape)
	}
	work := m.Clone()
	q := NewDense[T](m.rows, m.cols)
	r := NewDense[T](m.cols, m.cols)
	vs := make([]T, m.rows*m.cols)
	betas := make([]T, m.cols)
	if err := linalg.HouseholderQR(work.data, m.rows, m.cols, q.data, r.data, vs, betas); err != nil {
		return nil, numerr.Op(linalg.OpQR, err)
	}
	return &QRResult[T]{Q: q, R: r}, nil
}

// SVD computes the full singular value decomposition by one-sided Jacobi
// rotations.
func (m *Dense[T]) SVD() (*SVDResult[T], error) {
	k := min(m.rows, m.cols)
	u := NewDense[T](m.rows, m.rows)
	s := NewDense[T](m.rows, m.cols)
	v := NewDense[T](m.cols, m.cols)
	ws := linalg.SVDWork[T]{
		W:     make([]T, m.rows*m.cols),
		Vals:  make([]T, k),
		Order: make([]int, k),
	}
	if err := linalg.JacobiSVD(m.data, m.rows, m.cols, u.data, s.data, v.data, ws); err != nil {
		return nil, numerr.Op(linalg.OpSVD, err)
	}
	return &SVDResult[T]{U: u, S: s, V: v}, nil
}

// Inverse returns m⁻¹ computed from an LU factorization with partial
// pivoting and two triangular solves per column.
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if m.rows != m.cols {
		return nil, numerr.Op(linalg.OpInverse, linalg.ErrNotSquare)
	}
	n := m.rows
	packed := m.Clone()
	perm := make([]int, n)
	if _, err := linalg.LUInPlace(packed.data, n, n, perm); err != nil {
		return nil, numerr.Op(linalg.OpInverse, err)
	}
	inv := NewDense[T](n, n)
	linalg.InverseLU(packed.data, n, perm, inv.data, make([]T, n), make([]T, n))
	return inv, nil
}

// Det returns the determinant of a square matrix. Singular matrices (no
// pivot above the tolerance) report 0.
func (m *Dense[T]) Det() (T, error) {
	if m.rows != m.cols {
		return 0, numerr.Op(linalg.OpDet, linalg.ErrNotSquare)
	}
	packed := m.Clone()
	perm := make([]int, m.rows)
	swaps, err := linalg.LUInPlace(packed.data, m.rows, m.rows, perm)
	if err != nil {
		return 0, nil
	}
	return linalg.DetLU(packed.data, m.rows, swaps), nil
}

// Solve returns x with m·x = b for square m.
func (m *Dense[T]) Solve(b *Vector[T]) (*Vector[T], error) {
	if m.rows != m.cols {
		return nil, numerr.Op(linalg.OpSolve, linalg.ErrNotSquare)
	}
	f, err := m.LU()
	if err != nil {
		return nil, numerr.Op(linalg.OpSolve, err)
	}
	return f.Solve(b)
}
