package tween

import "math"

// Ease maps normalised progress in [0,1] to eased progress.
type Ease func(t float64) float64

// Linear does no easing.
func Linear(t float64) float64 { return t }

// Power1InOut is a quadratic ease-in-out.
func Power1InOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Power2Out is a cubic ease-out.
func Power2Out(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Power2In is a cubic ease-in.
func Power2In(t float64) float64 {
	return t * t * t
}

// BackOut overshoots the target by an amount controlled by s and settles back.
func BackOut(s float64) Ease {
	return func(t float64) float64 {
		t--
		return t*t*((s+1)*t+s) + 1
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
