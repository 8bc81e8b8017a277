package core

import "math"

// EaseInOutQuart maps progress x in [0, 1] onto a quartic ease-in-out curve.
func EaseInOutQuart(x float64) float64 {
	if x < 0.5 {
		return 8 * x * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 4)/2
}
