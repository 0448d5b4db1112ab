package linalg

import "github.com/tphakala/go-numkit/internal/simdops"

// MaxSweeps caps the number of Jacobi sweeps before SVD gives up.
const MaxSweeps = 100

// SVDWork is the scratch space of JacobiSVD for an r×c input.
type SVDWork[F simdops.Float] struct {
	W     []F   // r*c
	Vals  []F   // min(r,c)
	Order []int // min(r,c)
}

// JacobiSVD computes A = U·Σ·Vᵀ for the r×c matrix a with one-sided Jacobi
// rotations. u is r×r, sigma r×c and v c×c. Singular values are sorted in
// descending order and U is completed to a full orthonormal basis.
//
// Wide inputs are handled by factoring Aᵀ and swapping the roles of U and V.
// a is not modified.
func JacobiSVD[F simdops.Float](a []F, r, c int, u, sigma, v []F, ws SVDWork[F]) error {
	if r >= c {
		copy(ws.W, a[:r*c])
		if err := jacobiTall(ws.W, r, c, u, v, ws.Vals, ws.Order); err != nil {
			return err
		}
	} else {
		Transpose(ws.W, a, r, c)
		if err := jacobiTall(ws.W, c, r, v, u, ws.Vals, ws.Order); err != nil {
			return err
		}
	}

	clear(sigma[:r*c])
	for k := range min(r, c) {
		sigma[k*c+k] = ws.Vals[k]
	}
	return nil
}

// jacobiTall factors the m×n matrix w (m ≥ n) in place. On success u holds
// the m×m left factor, v the n×n right factor and vals the n singular values
// in descending order.
func jacobiTall[F simdops.Float](w []F, m, n int, u, v, vals []F, order []int) error {
	tol := simdops.RotationTolerance[F]()
	SetIdentity(v, n, n)

	converged := false
	for sweep := 0; sweep < MaxSweeps && !converged; sweep++ {
		converged = true
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				np, nq := Nrm2(w, p, n, m), Nrm2(w, q, n, m)
				if np == 0 || nq == 0 {
					continue
				}
				// cosine of the angle between the columns
				var cos F
				for i := range m {
					cos += (w[i*n+p] / np) * (w[i*n+q] / nq)
				}
				if Abs(cos) <= tol {
					continue
				}
				converged = false

				zeta := (nq/np - np/nq) / (2 * cos)
				var t F
				if z := Abs(zeta); z > 1/simdops.Epsilon[F]() {
					// t ≈ 1/(2ζ), taken from the ratio that stays finite
					if nq > np {
						t = cos * (np / nq)
					} else {
						t = -cos * (nq / np)
					}
				} else {
					sign := F(1)
					if zeta < 0 {
						sign = -1
					}
					t = sign / (z + Sqrt(1+zeta*zeta))
				}
				cs := 1 / Sqrt(1+t*t)
				sn := cs * t

				rotateColumns(w, m, n, p, q, cs, sn)
				rotateColumns(v, n, n, p, q, cs, sn)
			}
		}
	}
	if !converged {
		return ErrNoConvergence
	}

	for k := range n {
		vals[k] = Nrm2(w, k, n, m)
		order[k] = k
	}
	// stable insertion sort, descending
	for i := 1; i < n; i++ {
		for j := i; j > 0 && vals[order[j]] > vals[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	// Left vectors from normalized columns, completed to a full basis.
	clear(u[:m*m])
	var sMax F
	if n > 0 {
		sMax = vals[order[0]]
	}
	null := F(max(m, n)) * simdops.Epsilon[F]() * sMax
	for k := range m {
		if k < n {
			src := order[k]
			if s := vals[src]; s > null && s > 0 {
				for i := range m {
					u[i*m+k] = w[i*n+src] / s
				}
				if norm2 := orthogonalize(u, m, k); norm2 > 0.5 {
					scaleColumn(u, m, k, 1/Sqrt(norm2))
					continue
				}
			}
		}
		completeColumn(u, m, k)
	}

	permuteColumns(v, n, order, w)
	sorted := w[:n]
	for k := range n {
		sorted[k] = vals[order[k]]
	}
	copy(vals, sorted)
	return nil
}

// rotateColumns applies the plane rotation to columns p and q of the
// rows×cols matrix a: a_p ← c·a_p − s·a_q, a_q ← s·a_p + c·a_q.
func rotateColumns[F simdops.Float](a []F, rows, cols, p, q int, c, s F) {
	for i := range rows {
		ap, aq := a[i*cols+p], a[i*cols+q]
		a[i*cols+p] = c*ap - s*aq
		a[i*cols+q] = s*ap + c*aq
	}
}

// permuteColumns reorders the columns of the n×n matrix a so that new column
// k is old column order[k]. scratch must hold n*n values.
func permuteColumns[F simdops.Float](a []F, n int, order []int, scratch []F) {
	copy(scratch[:n*n], a[:n*n])
	for i := range n {
		for k, src := range order[:n] {
			a[i*n+k] = scratch[i*n+src]
		}
	}
}

// completeColumn fills column k of the m×m matrix u with a unit vector
// orthogonal to every other non-zero column, found by Gram-Schmidt on the
// standard basis vectors.
func completeColumn[F simdops.Float](u []F, m, k int) {
	for e := range m {
		for i := range m {
			u[i*m+k] = 0
		}
		u[e*m+k] = 1

		// the residuals of all m basis vectors sum to at least 1
		if norm2 := orthogonalize(u, m, k); norm2 > 1/F(2*m) {
			scaleColumn(u, m, k, 1/Sqrt(norm2))
			return
		}
	}
}

// orthogonalize removes from column k of u its projection on every other
// column, twice, and returns the squared norm of what remains. Zero columns
// do not contribute.
func orthogonalize[F simdops.Float](u []F, m, k int) F {
	for range 2 {
		for j := range m {
			if j == k {
				continue
			}
			var dot F
			for i := range m {
				dot += u[i*m+j] * u[i*m+k]
			}
			if dot == 0 {
				continue
			}
			for i := range m {
				u[i*m+k] -= dot * u[i*m+j]
			}
		}
	}
	var norm2 F
	for i := range m {
		norm2 += u[i*m+k] * u[i*m+k]
	}
	return norm2
}

func scaleColumn[F simdops.Float](u []F, m, k int, s F) {
	for i := range m {
		u[i*m+k] *= s
	}
}
