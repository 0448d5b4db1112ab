package numerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	singular := NoResult("matrix: singular matrix")
	mismatch := Precondition("matrix: dimension mismatch")

	tests := []struct {
		name         string
		err          error
		precondition bool
		noResult     bool
	}{
		{"no result sentinel", singular, false, true},
		{"precondition sentinel", mismatch, true, false},
		{"wrapped no result", Op("LU", singular), false, true},
		{"wrapped precondition", Op("Mul", mismatch), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.precondition, errors.Is(tt.err, ErrPrecondition))
			assert.Equal(t, tt.noResult, errors.Is(tt.err, ErrNoResult))
		})
	}
}

func TestOp_Message(t *testing.T) {
	singular := NoResult("matrix: singular matrix")
	err := Op("Inverse", singular)

	assert.Equal(t, "Inverse: matrix: singular matrix", err.Error())
	assert.ErrorIs(t, err, singular)
	assert.NotErrorIs(t, err, NoResult("matrix: singular matrix"), "sentinels compare by identity")
}
