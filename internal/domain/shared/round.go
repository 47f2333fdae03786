package shared

import "math"

// RoundStat applies the engine-wide stat rounding policy: rate stats and
// values below 1 keep three decimal places, everything else rounds to the
// nearest integer.
func RoundStat(kind StatKind, value float64) float64 {
	if kind.IsRate() || value < 1 {
		return math.Round(value*1000) / 1000
	}
	return math.Round(value)
}
