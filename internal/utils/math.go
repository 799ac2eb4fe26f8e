// internal/utils/math.go
package utils

import "math"

// Lerp performs linear interpolation between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
