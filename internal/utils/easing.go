package utils

import "math"

// Easing maps normalised time in [0,1] to normalised progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseOutQuad is used for effect fades.
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// CubicBezier builds an easing curve like CSS cubic-bezier(x1, y1, x2, y2).
// The x(s) = t equation is solved with Newton steps and a bisection fallback.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		s := t
		for i := 0; i < 8; i++ {
			x := sampleX(s) - t
			if math.Abs(x) < 1e-6 {
				return sampleY(s)
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= x / d
		}
		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 32; i++ {
			x := sampleX(s)
			if math.Abs(x-t) < 1e-6 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sampleY(s)
	}
}

// DeathEasing is the curve ghosts fall or rise with after being hit.
var DeathEasing = CubicBezier(0.2, 0.7, 0.3, 1.0)
