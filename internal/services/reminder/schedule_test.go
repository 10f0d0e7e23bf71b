package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	base := time.Date(2025, 10, 18, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"already on grid", base, base},
		{"rounds down", base.Add(2*time.Minute + 29*time.Second), base},
		{"rounds half up", base.Add(2*time.Minute + 30*time.Second), base.Add(5 * time.Minute)},
		{"rounds up", base.Add(4 * time.Minute), base.Add(5 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundTo(tt.in, SnoozeStep))
		})
	}

	assert.Equal(t, base.Add(time.Second), RoundTo(base.Add(time.Second), 0))
}

func TestTonight(t *testing.T) {
	afternoon := time.Date(2025, 10, 18, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 18, 20, 0, 0, 0, time.UTC), Tonight(afternoon, 20, 0))

	late := time.Date(2025, 10, 18, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 19, 20, 0, 0, 0, time.UTC), Tonight(late, 20, 0))
}

func TestTomorrow(t *testing.T) {
	endOfMonth := time.Date(2025, 10, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC), Tomorrow(endOfMonth, 9, 0))
}
