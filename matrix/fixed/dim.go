package fixed

// Dim is a compile-time dimension, one of D1 through D4. Larger shapes are
// served by matrix.Dense.
type Dim interface {
	D1 | D2 | D3 | D4
	N() int
}

// Dimension types.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
)

// N returns the size of the dimension.
func (D1) N() int { return 1 }

// N returns the size of the dimension.
func (D2) N() int { return 2 }

// N returns the size of the dimension.
func (D3) N() int { return 3 }

// N returns the size of the dimension.
func (D4) N() int { return 4 }

// maxDim is the largest supported dimension. Every Matrix reserves
// maxDim×maxDim elements, since an array length cannot be derived from R·C.
const maxDim = 4

func dims[R, C Dim]() (int, int) {
	var r R
	var c C
	return r.N(), c.N()
}
