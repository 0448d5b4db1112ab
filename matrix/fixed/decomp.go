package fixed

import (
	"github.com/tphakala/go-numkit/internal/linalg"
	"github.com/tphakala/go-numkit/internal/numerr"
	"github.com/tphakala/go-numkit/matrix"
)

// LU holds A[P] = L·U for an R×C matrix.
//
// L is square with a unit diagonal: its first min(R,C) columns are the
// elimination multipliers and any trailing columns are identity columns. U
// carries zero rows below min(R,C). Only P[:R] is meaningful. Trapezoidal
// returns the factors trimmed to min(R,C).
type LU[T Float, R, C Dim] struct {
	L Matrix[T, R, R]
	U Matrix[T, R, C]
	P [maxDim]int
}

// QR holds the economy factorization A = Q·R.
type QR[T Float, R, C Dim] struct {
	Q Matrix[T, R, C]
	R Matrix[T, C, C]
}

// SVD holds A = U·Σ·Vᵀ with singular values in descending order.
type SVD[T Float, R, C Dim] struct {
	U Matrix[T, R, R]
	S Matrix[T, R, C]
	V Matrix[T, C, C]
}

// LU factors m with partial pivoting.
func (m Matrix[T, R, C]) LU() (LU[T, R, C], error) {
	var out LU[T, R, C]
	r, c := dims[R, C]()
	packed := m.data
	if _, err := linalg.LUInPlace(packed[:r*c], r, c, out.P[:r]); err != nil {
		return out, numerr.Op(linalg.OpLU, err)
	}
	linalg.SplitLU(packed[:r*c], r, c, out.L.data[:], r, out.U.data[:], r)
	return out, nil
}

// Trapezoidal returns L as R×K and U as K×C with K = min(R,C), the shapes
// matrix.Dense.LU reports. The results live on the heap.
func (f LU[T, R, C]) Trapezoidal() (l, u *matrix.Dense[T]) {
	r, c := dims[R, C]()
	k := min(r, c)
	l = matrix.NewDense[T](r, k)
	u = matrix.NewDense[T](k, c)
	for i := range r {
		for j := range k {
			l.Set(i, j, f.L.At(i, j))
		}
	}
	for i := range k {
		for j := range c {
			u.Set(i, j, f.U.At(i, j))
		}
	}
	return l, u
}

// QR computes the Householder factorization. It fails with
// matrix.ErrBadShape when R < C.
func (m Matrix[T, R, C]) QR() (QR[T, R, C], error) {
	var out QR[T, R, C]
	r, c := dims[R, C]()
	if r < c {
		return out, numerr.Op(linalg.OpQR, linalg.ErrBadShape)
	}
	work := m.data
	var vs [maxDim * maxDim]T
	var betas [maxDim]T
	err := linalg.HouseholderQR(work[:r*c], r, c, out.Q.data[:], out.R.data[:], vs[:], betas[:])
	if err != nil {
		return QR[T, R, C]{}, numerr.Op(linalg.OpQR, err)
	}
	return out, nil
}

// SVD computes the full singular value decomposition.
func (m Matrix[T, R, C]) SVD() (SVD[T, R, C], error) {
	var out SVD[T, R, C]
	r, c := dims[R, C]()
	var w [maxDim * maxDim]T
	var vals [maxDim]T
	var order [maxDim]int
	ws := linalg.SVDWork[T]{W: w[:], Vals: vals[:], Order: order[:]}
	if err := linalg.JacobiSVD(m.data[:r*c], r, c, out.U.data[:], out.S.data[:], out.V.data[:], ws); err != nil {
		return SVD[T, R, C]{}, numerr.Op(linalg.OpSVD, err)
	}
	return out, nil
}

// Inverse returns m⁻¹ via LU with partial pivoting.
func Inverse[T Float, N Dim](m Matrix[T, N, N]) (Matrix[T, N, N], error) {
	var out Matrix[T, N, N]
	n, _ := dims[N, N]()
	packed := m.data
	var perm [maxDim]int
	if _, err := linalg.LUInPlace(packed[:n*n], n, n, perm[:n]); err != nil {
		return out, numerr.Op(linalg.OpInverse, err)
	}
	var col, tmp [maxDim]T
	linalg.InverseLU(packed[:n*n], n, perm[:n], out.data[:], col[:], tmp[:])
	return out, nil
}

// Det returns the determinant of m, or 0 when no pivot exceeds the
// singularity tolerance.
func Det[T Float, N Dim](m Matrix[T, N, N]) T {
	n, _ := dims[N, N]()
	packed := m.data
	var perm [maxDim]int
	swaps, err := linalg.LUInPlace(packed[:n*n], n, n, perm[:n])
	if err != nil {
		return 0
	}
	return linalg.DetLU(packed[:n*n], n, swaps)
}
