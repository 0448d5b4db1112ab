package numkit

import (
	"fmt"

	"github.com/tphakala/go-numkit/fft"
	"github.com/tphakala/go-numkit/filter"
	"github.com/tphakala/go-numkit/matrix"
)

// FilterSignal is a convenience function for one-shot filtering.
// It builds a filter from config, runs x through it from the zero state,
// and returns the output.
func FilterSignal[F filter.Float](x []F, config *Config) ([]F, error) {
	f, err := NewFilter[F](config)
	if err != nil {
		return nil, err
	}
	return f.Process(x), nil
}

// LowPassSignal applies a 4th-order Butterworth low-pass at cutoff Hz.
func LowPassSignal[F filter.Float](x []F, cutoff, sampleRate float64) ([]F, error) {
	return FilterSignal(x, &Config{
		Kind:       KindButterworthLowPass,
		SampleRate: sampleRate,
		Cutoff:     cutoff,
	})
}

// PeakFrequency returns the frequency in Hz of the strongest non-DC bin of
// x's spectrum. x is zero-padded to the next power of two, so the result is
// quantized to sampleRate/N.
func PeakFrequency[F filter.Float](x []F, sampleRate float64) (float64, error) {
	if !(sampleRate > 0) {
		return 0, fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}
	if len(x) == 0 {
		return 0, fft.ErrEmptyInput
	}
	padded := fft.ZeroPad(x)
	spectrum, err := fft.FFTReal(padded)
	if err != nil {
		return 0, err
	}
	bin := fft.PeakBin(fft.Magnitude(spectrum), true)
	if bin < 0 {
		return 0, fmt.Errorf("%w: %d samples have no non-DC bin", ErrInvalidConfig, len(x))
	}
	return float64(bin) * sampleRate / float64(len(padded)), nil
}

// SolveLinear solves a·x = b for a square system given as rows.
// A singular system returns an error matching ErrNoResult.
func SolveLinear(a [][]float64, b []float64) ([]float64, error) {
	m, err := matrix.FromRows(a)
	if err != nil {
		return nil, err
	}
	x, err := m.Solve(matrix.NewVectorFrom(b))
	if err != nil {
		return nil, err
	}
	return x.RawData(), nil
}

// Interleave converts planar channels to interleaved frames.
// Output format: [c0[0], c1[0], ..., c0[1], c1[1], ...]
// Every channel must have the same length.
func Interleave[F filter.Float](channels [][]F) ([]F, error) {
	n := len(channels)
	if n == 0 {
		return []F{}, nil
	}
	frames := len(channels[0])
	for ch, c := range channels {
		if len(c) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidConfig, ch, len(c), frames)
		}
	}
	out := make([]F, frames*n)
	for ch, c := range channels {
		for i, v := range c {
			out[i*n+ch] = v
		}
	}
	return out, nil
}

// Deinterleave splits interleaved frames into numChannels planar slices.
// Trailing samples that do not fill a frame are dropped.
func Deinterleave[F filter.Float](interleaved []F, numChannels int) ([][]F, error) {
	if numChannels < 1 || numChannels > maxChannels {
		return nil, fmt.Errorf("%w: channels must be in [1, %d]", ErrInvalidConfig, maxChannels)
	}
	frames := len(interleaved) / numChannels
	out := make([][]F, numChannels)
	for ch := range out {
		out[ch] = make([]F, frames)
		for i := range frames {
			out[ch][i] = interleaved[i*numChannels+ch]
		}
	}
	return out, nil
}

// InterleaveToStereo converts two mono channels to interleaved stereo,
// truncating to the shorter channel.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo[F filter.Float](left, right []F) []F {
	minLen := min(len(left), len(right))
	result := make([]F, minLen*stereoChannels)
	for i := range minLen {
		result[i*stereoChannels] = left[i]
		result[i*stereoChannels+1] = right[i]
	}
	return result
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]
func DeinterleaveFromStereo[F filter.Float](interleaved []F) (left, right []F) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]F, numSamples)
	right = make([]F, numSamples)
	for i := range numSamples {
		left[i] = interleaved[i*stereoChannels]
		right[i] = interleaved[i*stereoChannels+1]
	}
	return left, right
}
