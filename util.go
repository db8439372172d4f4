package svograde

import "math"

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundU8 rounds to the nearest integer and saturates to [0, 255].
func roundU8(v float64) uint8 {
	return uint8(clampF(math.Round(v), 0, 255))
}
