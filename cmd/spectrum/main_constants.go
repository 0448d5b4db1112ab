package main

// Default command-line flag values
const (
	defaultFFTSize  = 8192 // Transform length
	defaultTopBins  = 5    // Peaks listed
	defaultWindow   = "hann"
	defaultChannel  = 0
	minRequiredArgs = 1
)

// Demo signal parameters
const (
	demoSampleRate = 48000.0
	demoToneLow    = 440.0  // A4
	demoToneHigh   = 5000.0 // Removed by the demo low-pass
	demoAmpHigh    = 0.5
	demoCutoff     = 1000.0
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// Display
const (
	bytesPerKilobyte = 1024
	minMagnitudeDB   = -120.0
)
