package filter

import (
	"math"
	"math/cmplx"
)

// Responder is implemented by every filter that can evaluate its frequency
// response.
type Responder interface {
	FrequencyResponse(freq, fs float64) complex128
}

// Response holds a sampled frequency response.
type Response struct {
	// Frequencies in Hz, from 0 up to but excluding Nyquist.
	Frequencies []float64

	// Magnitude is |H| on a linear scale.
	Magnitude []float64

	// Phase is arg H in radians.
	Phase []float64
}

// ComputeResponse evaluates r at numPoints evenly spaced frequencies in
// [0, fs/2). A non-positive numPoints selects 512.
func ComputeResponse(r Responder, fs float64, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}
	resp := Response{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}
	step := fs / nyquistDivisor / float64(numPoints)
	for k := range numPoints {
		f := float64(k) * step
		h := r.FrequencyResponse(f, fs)
		resp.Frequencies[k] = f
		resp.Magnitude[k] = cmplx.Abs(h)
		resp.Phase[k] = cmplx.Phase(h)
	}
	return resp
}

// MagnitudeDB converts linear magnitude to decibels, flooring at −200 dB.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
