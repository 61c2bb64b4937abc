package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampInt limits v to the range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
