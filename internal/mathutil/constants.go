package mathutil

// Bessel series constants
const (
	// Relative size of the last term at which the I₀ power series stops.
	besselSeriesTolerance = 1e-17

	// Hard cap on series terms; I₀ converges in well under 100 terms for |x| < 50.
	besselMaxTerms = 500
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	kaiserBetaHighCoeff1 = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation

	kaiserBetaMediumCoeff1 = 0.5842  // Primary coefficient for medium attenuation
	kaiserBetaMediumPower  = 0.4     // Power for medium attenuation formula
	kaiserBetaMediumCoeff2 = 0.07886 // Secondary coefficient for medium attenuation
)

// Filter length estimation constants
const (
	// Kaiser's filter length formula: N ≈ (att - 8) / (2.285 * Δω)
	kaiserFilterLengthOffset     = 8.0
	kaiserFilterLengthMultiplier = 2.285

	minFilterLength = 3
	maxFilterLength = 8191

	defaultTransitionBW = 0.01 // Prevent division by zero
)

// Sinc evaluation
const (
	sincZeroThreshold = 1e-12
)
