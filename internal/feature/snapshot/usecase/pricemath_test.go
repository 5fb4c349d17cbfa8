package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		currentPrice  int64
		previousClose int64
		expected      float64
	}{
		{name: "loss from 173500 to 169000 close", currentPrice: 173500, previousClose: 169000, expected: 2.66},
		{name: "gain is also non-negative", currentPrice: 169000, previousClose: 173500, expected: 2.59},
		{name: "equal prices take the degenerate branch", currentPrice: 100, previousClose: 100, expected: 0.00},
		{name: "rounds to two decimal places", currentPrice: 101, previousClose: 300, expected: 66.33},
		{name: "zero previous close answers zero instead of dividing", currentPrice: 100, previousClose: 0, expected: 0.00},
		{name: "both prices zero", currentPrice: 0, previousClose: 0, expected: 0.00},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, DiffPercent(tt.currentPrice, tt.previousClose), 1e-9)
		})
	}
}

func TestDiffPercent_ZeroPreviousCloseDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { DiffPercent(100, 0) })
}

func TestDiffPercent_AlwaysNonNegative(t *testing.T) {
	t.Parallel()

	pairs := [][2]int64{{100, 120}, {120, 100}, {1, 1000000}, {1000000, 1}}
	for _, p := range pairs {
		assert.GreaterOrEqual(t, DiffPercent(p[0], p[1]), 0.0, "pair %v", p)
	}
}

func TestDiffPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(20), DiffPrice(100, 120))
	assert.Equal(t, int64(20), DiffPrice(120, 100), "order-independent")
	assert.Equal(t, int64(0), DiffPrice(500, 500))
}
