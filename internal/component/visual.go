// internal/component/visual.go
package component

import (
	"image/color"
	"time"
)

// Ring is the expanding flash drawn where a projectile lands.
type Ring struct {
	X, Y       float64 // centre
	Color      color.RGBA
	Elapsed    time.Duration
	Duration   time.Duration
	StartScale float64
	EndScale   float64
}

// Particle flies from its origin by (DX, DY) while fading out.
type Particle struct {
	X, Y     float64
	DX, DY   float64
	Scale    float64
	Color    color.RGBA
	Elapsed  time.Duration
	Duration time.Duration
}

// FloatText is a short score label that drifts up and disappears.
type FloatText struct {
	X, Y     float64
	Text     string
	Color    color.RGBA
	Elapsed  time.Duration
	Duration time.Duration
}

// Fraction returns how far through its life an effect is, in [0,1].
func Fraction(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(duration)
	if f > 1 {
		return 1
	}
	return f
}
