package rounding

import "math"

// HalfUp rounds v to the given number of decimal places, half away from zero.
// Calculation chains keep full precision; callers round at the point of output.
func HalfUp(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
