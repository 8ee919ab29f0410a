// Package gamemath holds the scale arithmetic shared by the shape renderer
// and the chain's animation state. A scale is a progress value in [0, 1].
package gamemath

import "math"

// Inverse returns 1/n for n > 0.
func Inverse(n int) float64 {
	return 1 / float64(n)
}

// MaxScale returns how far value is past the start of segment i of n, never
// below zero.
func MaxScale(value float64, i, n int) float64 {
	return math.Max(0, value-float64(i)*Inverse(n))
}

// DivideScale maps a global scale to the local progress of segment i of n.
// It is 0 until the segment's turn, rises linearly to 1 over its 1/n share
// of the range and then stays at 1.
func DivideScale(value float64, i, n int) float64 {
	return math.Min(Inverse(n), MaxScale(value, i, n)) * float64(n)
}

// ScaleFactor is 0 below divider and 1 at or above it.
// Values outside [0, 1] that appear while a step overshoots are clamped so
// the step size never becomes zero.
func ScaleFactor(value, divider float64) float64 {
	k := math.Floor(value / divider)
	return math.Max(0, math.Min(1, k))
}

// MirrorValue selects 1/a below divider and 1/b at or above it.
func MirrorValue(value float64, a, b int, divider float64) float64 {
	k := ScaleFactor(value, divider)
	return (1-k)*Inverse(a) + k*Inverse(b)
}

// UpdateValue returns the per-tick increment for a scale moving in dir.
func UpdateValue(value, dir float64, a, b int, gap, divider float64) float64 {
	return MirrorValue(value, a, b, divider) * gap * dir
}

// SignFlip returns +1 for j=0 and -1 for j=1.
func SignFlip(j int) float64 {
	return 1 - 2*float64(j)
}
