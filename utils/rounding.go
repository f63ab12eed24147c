package utils

import "math"

// RoundHalfUp rounds half away from zero: 3.75 → 4, 1.875 → 2, -2.5 → -3.
// Scoring rules round this way everywhere, never banker's rounding.
func RoundHalfUp(value float64) int {
	if value < 0 {
		return -int(math.Floor(-value + 0.5))
	}
	return int(math.Floor(value + 0.5))
}

// Round2 rounds money and CO2 figures to 2 decimal places for output.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
