package scalar

import "math"

func DegToRad[T Float](deg T) T {
	return (deg * math.Pi) / 180
}

func RadToDeg[T Float](rad T) T {
	return (rad * 180) / math.Pi
}

// Clamp limits x to the closed range [lo, hi].
func Clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates linearly between a and b; t = 0 yields a, t = 1 yields b.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}
