package kdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedComparer pins the clock to 2024-03-15 local time.
func fixedComparer() *Comparer {
	return &Comparer{now: func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	}}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "slashes become dashes", in: "2024/03/15", expected: "2024-03-15"},
		{name: "dashes pass through", in: "2024-03-15", expected: "2024-03-15"},
		{name: "empty string", in: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}

func TestComparer_IsToday(t *testing.T) {
	t.Parallel()

	c := fixedComparer()

	assert.True(t, c.IsToday("2024-03-15"))
	assert.True(t, c.IsToday("2024/03/15"), "slash-delimited dates compare after normalization")
	assert.True(t, c.IsToday("2024-3-15"), "unpadded dates compare by parsed value")
	assert.False(t, c.IsToday("2024-03-14"))
	assert.False(t, c.IsToday(""))
	assert.False(t, c.IsToday("not-a-date"))
}

func TestNewComparer_UsesSystemClock(t *testing.T) {
	t.Parallel()

	c := NewComparer()
	assert.True(t, c.IsToday(time.Now().Format(Layout)))
}
