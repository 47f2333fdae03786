package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpToNextLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected float64
	}{
		{
			name:     "level 1 baseline",
			level:    1,
			expected: 50,
		},
		{
			name:     "level 2 compounds once",
			level:    2,
			expected: 55,
		},
		{
			name:     "level 3 compounds twice",
			level:    3,
			expected: 60.5,
		},
		{
			name:     "level 4 step targets a multiple of five",
			level:    4,
			expected: 60.5 * 1.6,
		},
		{
			name:     "level 9 step targets a multiple of ten",
			level:    9,
			expected: 50 * 1.1 * 1.1 * 1.6 * 1.1 * 1.1 * 1.1 * 1.1 * 2.1,
		},
		{
			name:     "level below one reads as level one",
			level:    0,
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ExpToNextLevel(tt.level), 1e-9)
		})
	}
}

func TestExpToNextLevelTenTakesPrecedenceOverFive(t *testing.T) {
	// 10 is a multiple of both 5 and 10; the ratio between the level-9
	// and level-8 thresholds must be the multiple-of-ten step.
	ratio := ExpToNextLevel(9) / ExpToNextLevel(8)
	assert.InDelta(t, 2.1, ratio, 1e-9)
}

func TestExpToNextLevelMonotonic(t *testing.T) {
	prev := ExpToNextLevel(1)
	for level := 2; level <= 40; level++ {
		next := ExpToNextLevel(level)
		assert.Greater(t, next, prev, "threshold must grow at level %d", level)
		prev = next
	}
}
