package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		places int
		want   float64
	}{
		{"exact binary tie", 0.125, 2, 0.13},
		{"negative tie", -0.125, 2, -0.13},
		{"tie stored below", 1.005, 2, 1.01},
		{"tie stored above", 2.675, 2, 2.68},
		{"product below tie", 0.7 * 1.75, 2, 1.23},
		{"product below tie small", 2.5 * 0.022, 2, 0.06},
		{"not a tie", 0.01005, 2, 0.01},
		{"round down", 1.234, 2, 1.23},
		{"already rounded", 199.5, 2, 199.5},
		{"to zero", 0.004, 2, 0},
		{"negative to zero", -0.004, 2, 0},
		{"integer places", 18248.5, 0, 18249},
		{"large", 1234567.891, 2, 1234567.89},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.in, tt.places)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.Signbit(got) && got == 0, "negative zero")
		})
	}
}

func TestRound_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestRound_Idempotent(t *testing.T) {
	for _, v := range []float64{1.52, 120.1, 7980, 0.06, 114200} {
		assert.Equal(t, v, Round(Round(v, 2), 2))
	}
}
