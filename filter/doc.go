// Package filter provides FIR and IIR digital filters and factory designs.
//
// FIR filters convolve the input with a coefficient vector b[0..N] through a
// fixed-capacity delay line. IIR filters evaluate the direct-form I
// difference equation
//
//	a[0]·y[n] = Σ b[k]·x[n−k] − Σ_{k≥1} a[k]·y[n−k]
//
// with separate input and output delay lines. Steady-state processing does
// not allocate, and Filter never fails once construction succeeded.
//
// Designs return coefficients: FIR windowed-sinc designs return []F, IIR
// designs return a TransferFunc that builds the filter with New. Higher-order
// IIR designs are also available as second-order sections for a Cascade.
//
// Frequencies are in Hz throughout; ω = 2π·f/fs.
package filter
