package vmath

import "math"

// Clamp01 limits t to [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates between a and b, t is clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// EaseInOutCubic is the cubic in-out curve used for smooth scrolling
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// EaseOutCubic decelerates toward the end
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	f := 1 - t
	return 1 - f*f*f
}

// EaseInOutSine maps a cycle phase in [0, 1) to a 0 -> 1 -> 0 wave
func EaseInOutSine(phase float64) float64 {
	phase -= math.Floor(phase)
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

// Progress returns elapsed/total clamped to [0, 1], zero total is complete
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(elapsed / total)
}
