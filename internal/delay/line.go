// Package delay provides the fixed-capacity delay line used by the FIR and
// IIR filters.
package delay

import "github.com/tphakala/go-numkit/internal/simdops"

// mirrorFactor is the storage multiplier of the mirrored layout.
const mirrorFactor = 2

// Line is a fixed-capacity FIFO of the most recent samples.
//
// Every sample is written twice, at slot i and at slot i+capacity, so the
// current window is always one contiguous slice. This lets filters run a
// single dot product over the window without wrap-around handling and keeps
// Push allocation-free.
type Line[F simdops.Float] struct {
	data     []F
	capacity int
	next     int // slot that the next Push overwrites (the oldest sample)
}

// NewLine creates a zero-filled delay line holding capacity samples.
// A negative capacity is treated as zero.
func NewLine[F simdops.Float](capacity int) *Line[F] {
	if capacity < 0 {
		capacity = 0
	}
	return &Line[F]{
		data:     make([]F, mirrorFactor*capacity),
		capacity: capacity,
	}
}

// Len returns the capacity of the line.
func (l *Line[F]) Len() int {
	return l.capacity
}

// Push inserts x as the newest sample, evicting the oldest.
func (l *Line[F]) Push(x F) {
	if l.capacity == 0 {
		return
	}
	l.data[l.next] = x
	l.data[l.next+l.capacity] = x
	l.next++
	if l.next == l.capacity {
		l.next = 0
	}
}

// Window returns the stored samples ordered oldest to newest.
// The slice aliases internal storage and is valid until the next Push.
func (l *Line[F]) Window() []F {
	return l.data[l.next : l.next+l.capacity]
}

// At returns the sample pushed k steps ago; At(0) is the newest.
func (l *Line[F]) At(k int) F {
	return l.data[l.next+l.capacity-1-k]
}

// Fill loads the line from state, where state[k] is the sample pushed k steps
// ago. len(state) must equal Len.
func (l *Line[F]) Fill(state []F) {
	l.next = 0
	for k, v := range state {
		i := l.capacity - 1 - k
		l.data[i] = v
		l.data[i+l.capacity] = v
	}
}

// Reset zeroes every stored sample.
func (l *Line[F]) Reset() {
	clear(l.data)
	l.next = 0
}
