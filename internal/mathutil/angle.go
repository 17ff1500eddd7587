package mathutil

import "math"

// FullTurn is one revolution in degrees.
const FullTurn = 360.0

// WrapDegrees maps any angle to [0, 360) using a true (non-negative) modulo.
func WrapDegrees(d float64) float64 {
	d = math.Mod(d, FullTurn)
	if d < 0 {
		d += FullTurn
	}
	// math.Mod can hand back -0 or, after the += above, exactly 360 for tiny negatives.
	if d >= FullTurn || d == 0 {
		return 0
	}
	return d
}

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float64) float64 {
	d := WrapDegrees(a - b)
	if d > 180 {
		return 360 - d
	}
	return d
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
