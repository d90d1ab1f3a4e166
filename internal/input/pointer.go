// Package input turns ebiten mouse and touch state into presses.
package input

import (
	"time"

	"ghost-fighter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer collects presses from the mouse and every touch. Mobile browsers
// report a touch and a synthetic click for the same tap, so presses closer
// together than the cooldown at the same spot are folded into one.
type Pointer struct {
	touchIDs []ebiten.TouchID
	last     ui.Press
	lastAt   time.Duration
	clock    time.Duration
	hasLast  bool
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// Poll returns the presses that started this frame. dt feeds the cooldown clock.
func (p *Pointer) Poll(dt time.Duration) []ui.Press {
	p.clock += dt
	var out []ui.Press
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = p.accept(out, ui.Press{X: float64(x), Y: float64(y)})
	}
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		out = p.accept(out, ui.Press{X: float64(x), Y: float64(y)})
	}
	return out
}

func (p *Pointer) accept(out []ui.Press, pr ui.Press) []ui.Press {
	if ui.Duplicate(p.hasLast, p.last, p.clock-p.lastAt, pr) {
		return out
	}
	p.last, p.lastAt, p.hasLast = pr, p.clock, true
	return append(out, pr)
}

// Keys reports the keyboard shortcuts pressed this frame.
type Keys struct {
	Confirm bool // space or enter
	Mode    int  // 1-based attack mode index, 0 for none
	Pause   bool
}

func PollKeys() Keys {
	var k Keys
	k.Confirm = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		k.Mode = 1
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		k.Mode = 2
	}
	k.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return k
}
