package numkit

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-numkit/filter"
)

// MultiChannel runs one independent filter per channel.
type MultiChannel[F filter.Float] struct {
	config   Config
	channels []Filter[F]
}

// NewMultiChannel builds config.Channels identical filters.
func NewMultiChannel[F filter.Float](config *Config) (*MultiChannel[F], error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := config.withDefaults()

	m := &MultiChannel[F]{
		config:   c,
		channels: make([]Filter[F], c.Channels),
	}
	for ch := range m.channels {
		f, err := NewFilter[F](&c)
		if err != nil {
			return nil, err
		}
		m.channels[ch] = f
	}
	return m, nil
}

// Channels returns the channel count.
func (m *MultiChannel[F]) Channels() int {
	return len(m.channels)
}

// Channel returns the filter of channel ch.
func (m *MultiChannel[F]) Channel(ch int) Filter[F] {
	return m.channels[ch]
}

// ProcessMulti filters each channel of input with its own filter.
// When EnableParallel is set, channels are processed concurrently.
// Otherwise, channels are processed sequentially.
func (m *MultiChannel[F]) ProcessMulti(input [][]F) ([][]F, error) {
	if len(input) != len(m.channels) {
		return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidConfig, len(m.channels), len(input))
	}

	output := make([][]F, len(input))

	if !m.config.EnableParallel || len(input) <= 1 {
		for ch := range input {
			output[ch] = m.channels[ch].Process(input[ch])
		}
		return output, nil
	}

	// Each goroutine owns one filter and one output slot.
	var wg sync.WaitGroup
	for ch := range input {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			output[channel] = m.channels[channel].Process(input[channel])
		}(ch)
	}
	wg.Wait()

	return output, nil
}

// ProcessMultiTo filters src[ch] into dst[ch] for every channel without
// allocating output. Each dst[ch] must have the length of src[ch].
func (m *MultiChannel[F]) ProcessMultiTo(dst, src [][]F) error {
	if len(src) != len(m.channels) || len(dst) != len(m.channels) {
		return fmt.Errorf("%w: expected %d channels, got %d in and %d out",
			ErrInvalidConfig, len(m.channels), len(src), len(dst))
	}

	if !m.config.EnableParallel || len(src) <= 1 {
		for ch := range src {
			if err := m.channels[ch].ProcessTo(dst[ch], src[ch]); err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}
		}
		return nil
	}

	var (
		wg         sync.WaitGroup
		errMu      sync.Mutex
		processErr error
	)
	for ch := range src {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			if err := m.channels[channel].ProcessTo(dst[channel], src[channel]); err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("channel %d: %w", channel, err)
				}
				errMu.Unlock()
			}
		}(ch)
	}
	wg.Wait()

	return processErr
}

// ProcessInterleaved filters interleaved frames [c0, c1, ..., c0, c1, ...].
// len(input) must be a multiple of the channel count.
func (m *MultiChannel[F]) ProcessInterleaved(input []F) ([]F, error) {
	n := len(m.channels)
	if len(input)%n != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a whole number of %d-channel frames", ErrInvalidConfig, len(input), n)
	}
	planar, err := Deinterleave(input, n)
	if err != nil {
		return nil, err
	}
	out, err := m.ProcessMulti(planar)
	if err != nil {
		return nil, err
	}
	return Interleave(out)
}

// Reset clears the state of every channel.
func (m *MultiChannel[F]) Reset() {
	for _, f := range m.channels {
		f.Reset()
	}
}
