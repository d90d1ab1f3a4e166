// internal/utils/math.go
package utils

import "math"

// Lerp performs plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Hypot returns the distance between two points.
func Hypot(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}
