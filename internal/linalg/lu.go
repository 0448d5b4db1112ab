package linalg

import "github.com/tphakala/go-numkit/internal/simdops"

// LUInPlace factors the r×c matrix a as A[perm] = L·U using Doolittle
// elimination with partial pivoting.
//
// On return a holds the multipliers of L strictly below the diagonal and U on
// and above it; rows are physically swapped, and perm[i] names the original
// row now stored at row i. perm must have length r. The number of row swaps is
// returned so callers can recover the determinant sign.
//
// Pivots are visited in order i = 0..min(r,c)-1. A pivot whose magnitude is
// below the type's pivot tolerance yields ErrSingular; a is then left
// partially eliminated, so callers must factor a copy.
func LUInPlace[F simdops.Float](a []F, r, c int, perm []int) (int, error) {
	tol := simdops.PivotTolerance[F]()
	for i := range r {
		perm[i] = i
	}

	swaps := 0
	for i := range min(r, c) {
		p := i
		best := Abs(a[i*c+i])
		for k := i + 1; k < r; k++ {
			if v := Abs(a[k*c+i]); v > best {
				best, p = v, k
			}
		}
		if best < tol {
			return swaps, ErrSingular
		}
		if p != i {
			swapRows(a, c, i, p)
			perm[i], perm[p] = perm[p], perm[i]
			swaps++
		}

		pivot := a[i*c+i]
		urow := a[i*c : (i+1)*c]
		for k := i + 1; k < r; k++ {
			row := a[k*c : (k+1)*c]
			m := row[i] / pivot
			row[i] = m
			if m == 0 {
				continue
			}
			for j := i + 1; j < c; j++ {
				row[j] -= m * urow[j]
			}
		}
	}
	return swaps, nil
}

func swapRows[F simdops.Float](a []F, c, i, j int) {
	ri := a[i*c : (i+1)*c]
	rj := a[j*c : (j+1)*c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// SplitLU extracts L (r×lc, unit diagonal) and U (ur×c) from a packed
// factorization produced by LUInPlace. The dynamic facade passes lc = ur =
// min(r,c); the fixed facade passes lc = ur = r and gets a square L whose
// trailing columns are identity columns and a U padded with zero rows.
func SplitLU[F simdops.Float](packed []F, r, c int, l []F, lc int, u []F, ur int) {
	k := min(r, c)
	clear(l[:r*lc])
	clear(u[:ur*c])
	for i := range r {
		for j := range min(i, k) {
			l[i*lc+j] = packed[i*c+j]
		}
		if i < lc {
			l[i*lc+i] = 1
		}
	}
	for i := range k {
		for j := i; j < c; j++ {
			u[i*c+j] = packed[i*c+j]
		}
	}
}

// LUSolve solves A·x = b for square n×n A given its packed factorization and
// permutation. x and b may alias.
func LUSolve[F simdops.Float](packed []F, n int, perm []int, b, x []F, tmp []F) {
	// forward substitution with unit-diagonal L on the permuted right-hand side
	for i := range n {
		sum := b[perm[i]]
		row := packed[i*n : (i+1)*n]
		for k := range i {
			sum -= row[k] * tmp[k]
		}
		tmp[i] = sum
	}
	// back substitution with U
	for i := n - 1; i >= 0; i-- {
		sum := tmp[i]
		row := packed[i*n : (i+1)*n]
		for k := i + 1; k < n; k++ {
			sum -= row[k] * x[k]
		}
		x[i] = sum / row[i]
	}
}

// InverseLU writes A⁻¹ into inv using the packed factorization of the n×n
// matrix A: for each column j it solves L·U·x = P·e_j with one forward and
// one backward triangular solve. col and tmp must each hold n values.
func InverseLU[F simdops.Float](packed []F, n int, perm []int, inv, col, tmp []F) {
	for j := range n {
		clear(col[:n])
		col[j] = 1
		LUSolve(packed, n, perm, col, col, tmp)
		for i := range n {
			inv[i*n+j] = col[i]
		}
	}
}

// DetLU returns the determinant from a packed square factorization.
func DetLU[F simdops.Float](packed []F, n, swaps int) F {
	det := F(1)
	if swaps%2 == 1 {
		det = -1
	}
	for i := range n {
		det *= packed[i*n+i]
	}
	return det
}
