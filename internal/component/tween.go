package component

import (
	"time"

	"ghost-fighter/internal/utils"
)

// Tween moves an entity's Position from From to To over Duration.
// OnDone runs once, after the final position has been written.
type Tween struct {
	From     Position
	To       Position
	Duration time.Duration
	Elapsed  time.Duration
	Ease     utils.Easing
	OnDone   func()
}

// Progress returns the eased completion in [0,1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	if p > 1 {
		p = 1
	}
	if t.Ease == nil {
		return p
	}
	return t.Ease(p)
}

// Sample returns the interpolated position at the current elapsed time.
func (t *Tween) Sample() Position {
	p := t.Progress()
	return Position{
		X:   utils.Lerp(t.From.X, t.To.X, p),
		Y:   utils.Lerp(t.From.Y, t.To.Y, p),
		Rot: utils.Lerp(t.From.Rot, t.To.Rot, p),
	}
}

func (t *Tween) Done() bool {
	return t.Elapsed >= t.Duration
}
