package util

import "math"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
