package numkit

// Channel constants
const (
	stereoChannels = 2   // Stereo channel count
	maxChannels    = 256 // Maximum supported channel count
)

// Default design parameters
const (
	// defaultFIROrder is used by FIR kinds when Config.Order is zero.
	defaultFIROrder = 64

	// defaultIIROrder is used by Butterworth and Chebyshev kinds.
	defaultIIROrder = 4

	// defaultQ is the Butterworth Q of a single biquad.
	defaultQ = 0.7071067811865476

	// defaultRippleDB is the Chebyshev passband ripple.
	defaultRippleDB = 1.0

	// defaultDCBlockCutoff is the DC blocker corner in Hz.
	defaultDCBlockCutoff = 10.0

	// defaultMovingAverageWidth is the window used when Order is zero.
	defaultMovingAverageWidth = 8

	// maxIIROrder bounds Butterworth and Chebyshev designs.
	maxIIROrder = 32

	// maxFIROrder bounds FIR designs.
	maxFIROrder = 1 << 16
)

// nyquistDivisor turns a sample rate into its Nyquist frequency.
const nyquistDivisor = 2.0
