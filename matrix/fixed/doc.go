// Package fixed provides small dense matrices whose shape is part of the type.
//
// A Matrix[T, R, C] stores its elements inline, so values are copyable and
// never touch the heap. Shapes are expressed with the dimension types D1..D4:
//
//	var a fixed.Matrix[float64, fixed.D2, fixed.D3]
//	var b fixed.Matrix[float64, fixed.D3, fixed.D4]
//	c := fixed.Mul(a, b) // Matrix[float64, D2, D4]
//
// Mul only compiles when the inner dimensions agree, and Inverse and Det only
// accept square matrices. Decompositions share their kernels with package
// matrix and report the same errors. Shapes beyond 4×4 belong to
// matrix.Dense.
package fixed
