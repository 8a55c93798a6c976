package systems

import "math"

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampFloat64 clamps a float64 value between min and max.
func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// sign returns -1, 0 or 1. Zero and NaN map to 0.
func sign(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// absf returns |v| for float32.
func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// fmod returns a non-negative remainder of a/b.
func fmod(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}
