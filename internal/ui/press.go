package ui

import (
	"time"

	"ghost-fighter/internal/config"
)

// Press is one pointer-down event in logical screen coordinates.
type Press struct {
	X, Y float64
}

// Duplicate reports whether pr repeats prev within the click cooldown, as
// happens when a touch also produces a synthetic mouse click.
func Duplicate(hasPrev bool, prev Press, since time.Duration, pr Press) bool {
	if !hasPrev || since >= config.ClickCooldown {
		return false
	}
	dx, dy := pr.X-prev.X, pr.Y-prev.Y
	return dx*dx+dy*dy <= 16*16
}
