package linalg

import "fmt"

// CheckIndex panics when (r, c) lies outside a rows×cols matrix.
// It compiles to nothing unless DebugChecks is set.
func CheckIndex(r, c, rows, cols int) {
	if !DebugChecks {
		return
	}
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %d×%d matrix", r, c, rows, cols))
	}
}

// CheckVectorIndex panics when i lies outside [0, n) under DebugChecks.
func CheckVectorIndex(i, n int) {
	if !DebugChecks {
		return
	}
	if i < 0 || i >= n {
		panic(fmt.Sprintf("matrix: index %d out of range for vector of length %d", i, n))
	}
}
