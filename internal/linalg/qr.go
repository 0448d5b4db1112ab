package linalg

import "github.com/tphakala/go-numkit/internal/simdops"

// HouseholderQR computes the economy factorization A = Q·R of the r×c matrix
// held in work (r ≥ c), overwriting work.
//
// q receives the r×c factor with orthonormal columns and rq the c×c upper
// triangle with a non-negative diagonal. vs must hold r*c values and betas c
// values; they store the unit reflectors between the forward and the Q
// assembly passes. A column whose trailing subnorm is zero yields
// ErrRankDeficient.
func HouseholderQR[F simdops.Float](work []F, r, c int, q, rq, vs, betas []F) error {
	if r < c {
		return ErrBadShape
	}

	for k := range c {
		v := vs[k*r : k*r+(r-k)]
		for i := range v {
			v[i] = work[(k+i)*c+k]
		}
		alpha := Nrm2(v, 0, 1, len(v))
		if alpha == 0 {
			return ErrRankDeficient
		}
		if v[0] < 0 {
			alpha = -alpha
		}
		v[0] += alpha

		// unit reflector: β = 2
		vnorm := Nrm2(v, 0, 1, len(v))
		for i := range v {
			v[i] /= vnorm
		}
		betas[k] = 2

		reflect(work, c, k, k, c, v, betas[k])
	}

	// Q = H_0·H_1·…·H_{c-1}·I, applied right to left.
	SetIdentity(q, r, c)
	for k := c - 1; k >= 0; k-- {
		reflect(q, c, k, 0, c, vs[k*r:k*r+(r-k)], betas[k])
	}

	clear(rq[:c*c])
	for i := range c {
		for j := i; j < c; j++ {
			rq[i*c+j] = work[i*c+j]
		}
	}

	for i := range c {
		if rq[i*c+i] >= 0 {
			continue
		}
		for j := i; j < c; j++ {
			rq[i*c+j] = -rq[i*c+j]
		}
		for row := range r {
			q[row*c+i] = -q[row*c+i]
		}
	}
	return nil
}

// reflect applies (I − β·v·vᵀ) to rows k.. and columns j0..j1-1 of the
// row-major matrix m with stride c.
func reflect[F simdops.Float](m []F, c, k, j0, j1 int, v []F, beta F) {
	for j := j0; j < j1; j++ {
		var s F
		for i, vi := range v {
			s += vi * m[(k+i)*c+j]
		}
		if s == 0 {
			continue
		}
		s *= beta
		for i, vi := range v {
			m[(k+i)*c+j] -= s * vi
		}
	}
}
