// internal/ui/button.go
package ui

import (
	"math"
	"time"

	"ghost-fighter/internal/defs"
)

// Button is a clickable rectangle. It carries no drawing code; each frontend
// draws it its own way using Scale for the press pulse.
type Button struct {
	X, Y, W, H float64
	Label      string
	Mode       defs.AttackMode // set on attack mode buttons
	sincePress time.Duration
	pressed    bool
}

func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

// Contains reports whether (x, y) is on the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Press restarts the pulse.
func (b *Button) Press() {
	b.pressed = true
	b.sincePress = 0
}

func (b *Button) Update(dt time.Duration) {
	b.sincePress += dt
}

// Scale is 1 at rest and briefly larger after a press.
func (b *Button) Scale() float64 {
	if !b.pressed {
		return 1
	}
	return 1 + 0.15*math.Exp(-b.sincePress.Seconds()*8)
}

// Center returns the middle of the button.
func (b *Button) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}
