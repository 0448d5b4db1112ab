package filter

import "math"

// Design constants.
const (
	twoPi = 2 * math.Pi

	// nyquistDivisor turns a sample rate into its Nyquist frequency.
	nyquistDivisor = 2.0

	// halfOrder locates the center tap of a linear-phase FIR.
	halfOrder = 2.0

	// Window cosine coefficients.
	hammingA0  = 0.54
	hammingA1  = 0.46
	hannA0     = 0.5
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08

	// defaultKaiserBeta is used when a Kaiser window is requested without β.
	defaultKaiserBeta = 8.6

	// gainThreshold guards DC gain normalization against a vanishing sum.
	gainThreshold = 1e-12
)

// Stability analysis limits.
const (
	// maxEigenOrder is the largest denominator order analysed through the
	// companion matrix.
	maxEigenOrder = 64

	// quadraticDivisor and discriminantFactor appear in the closed-form roots.
	quadraticDivisor   = 2.0
	discriminantFactor = 4.0
)

// Response analysis.
const (
	defaultResponsePoints = 512
	minMagnitude          = 1e-10
	dbMultiplier          = 20.0
)
