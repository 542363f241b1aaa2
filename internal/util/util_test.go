package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already exact", 12.34, 12.34},
		{"rounds up", 0.005, 0.01},
		{"rounds down", 10.994, 10.99},
		{"accumulated float error", 0.1 + 0.2, 0.3},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundCents(tt.in), 1e-9)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$4.99", FormatPrice(4.99))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$12.50", FormatPrice(12.5))
}
