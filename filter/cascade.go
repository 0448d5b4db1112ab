package filter

import "fmt"

// Cascade runs IIR sections in series, each feeding the next.
//
// High-order designs are numerically better behaved as a chain of
// second-order sections than as one expanded polynomial.
type Cascade[F Float] struct {
	sections []*IIR[F]
}

// NewCascade builds one IIR per transfer function. It fails with the first
// section's construction error.
func NewCascade[F Float](tfs ...TransferFunc[F]) (*Cascade[F], error) {
	c := &Cascade[F]{sections: make([]*IIR[F], 0, len(tfs))}
	for i, tf := range tfs {
		s, err := tf.New()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		c.sections = append(c.sections, s)
	}
	return c, nil
}

// Filter passes x through every section in order.
func (c *Cascade[F]) Filter(x F) F {
	for _, s := range c.sections {
		x = s.Filter(x)
	}
	return x
}

// Process filters x sample by sample and returns the outputs in a new slice.
func (c *Cascade[F]) Process(x []F) []F {
	out := make([]F, len(x))
	for i, v := range x {
		out[i] = c.Filter(v)
	}
	return out
}

// ProcessTo filters src into dst, which must have the same length.
func (c *Cascade[F]) ProcessTo(dst, src []F) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst has %d samples, src has %d", ErrSizeMismatch, len(dst), len(src))
	}
	for i, v := range src {
		dst[i] = c.Filter(v)
	}
	return nil
}

// Reset zeroes every section.
func (c *Cascade[F]) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}

// Sections returns the number of sections.
func (c *Cascade[F]) Sections() int {
	return len(c.sections)
}

// Section returns section i.
func (c *Cascade[F]) Section(i int) *IIR[F] {
	return c.sections[i]
}

// FrequencyResponse is the product of the section responses.
func (c *Cascade[F]) FrequencyResponse(freq, fs float64) complex128 {
	h := complex(1, 0)
	for _, s := range c.sections {
		h *= s.FrequencyResponse(freq, fs)
	}
	return h
}

// Stability is unstable if any section is, unknown if any section cannot be
// analysed, and stable otherwise.
func (c *Cascade[F]) Stability() Stability {
	verdict := StabilityStable
	for _, s := range c.sections {
		switch s.Stability() {
		case StabilityUnstable:
			return StabilityUnstable
		case StabilityUnknown:
			verdict = StabilityUnknown
		}
	}
	return verdict
}

// TransferFunc expands the sections into a single numerator and denominator.
func (c *Cascade[F]) TransferFunc() TransferFunc[F] {
	tfs := make([]TransferFunc[F], len(c.sections))
	for i, s := range c.sections {
		tfs[i] = TransferFunc[F]{B: s.b, A: s.a}
	}
	return expand(tfs)
}
