// internal/utils/math.go
package utils

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistanceSq returns the squared Euclidean distance between two points.
// Integer arithmetic keeps circle hit tests exact.
func DistanceSq(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// InCircle reports whether (x, y) lies inside or on the circle.
func InCircle(x, y, cx, cy, radius int) bool {
	return DistanceSq(x, y, cx, cy) <= radius*radius
}

// Lerp performs linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}
