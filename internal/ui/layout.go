package ui

import (
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/system"
)

const (
	buttonGap    = 12.0
	buttonMargin = 16.0
	bigButtonW   = 200.0
	bigButtonH   = 56.0
	pauseSize    = 40.0
	hudHeight    = 48.0
)

// Layout places every button for a playfield size.
type Layout struct {
	Modes []*Button
	Start *Button
	Again *Button
	// Pause sits under the HUD on the right while a round runs.
	Pause *Button
}

func NewLayout(field *system.Playfield) *Layout {
	l := &Layout{}
	l.Resize(field)
	return l
}

// Resize recomputes button rectangles, keeping pulse state.
func (l *Layout) Resize(field *system.Playfield) {
	n := float64(len(defs.Attacks))
	barY := field.H - field.ActionsH
	w := (field.W - 2*buttonMargin - (n-1)*buttonGap) / n
	h := field.ActionsH - 2*buttonMargin
	if len(l.Modes) != len(defs.Attacks) {
		l.Modes = make([]*Button, len(defs.Attacks))
		for i, def := range defs.Attacks {
			l.Modes[i] = &Button{Label: def.Label, Mode: def.Mode}
		}
	}
	for i, b := range l.Modes {
		b.X = buttonMargin + float64(i)*(w+buttonGap)
		b.Y = barY + buttonMargin
		b.W, b.H = w, h
	}

	cx, cy := field.W/2, (field.H-field.ActionsH)/2
	if l.Start == nil {
		l.Start = &Button{Label: "START"}
		l.Again = &Button{Label: "AGAIN"}
		l.Pause = &Button{Label: "PAUSE"}
	}
	l.Start.X, l.Start.Y, l.Start.W, l.Start.H = cx-bigButtonW/2, cy+40, bigButtonW, bigButtonH
	l.Again.X, l.Again.Y, l.Again.W, l.Again.H = cx-bigButtonW/2, cy+80, bigButtonW, bigButtonH
	l.Pause.X, l.Pause.Y, l.Pause.W, l.Pause.H = field.W-buttonMargin-pauseSize, hudHeight, pauseSize, pauseSize
}

// Buttons returns every button, for pulse updates.
func (l *Layout) Buttons() []*Button {
	return append([]*Button{l.Start, l.Again, l.Pause}, l.Modes...)
}

// ModeAt returns the attack mode whose button is under (x, y).
func (l *Layout) ModeAt(x, y float64) (*Button, bool) {
	for _, b := range l.Modes {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return nil, false
}

// InActionsBar reports whether y falls in the bottom bar, where taps never throw.
func InActionsBar(field *system.Playfield, y float64) bool {
	return y >= field.H-field.ActionsH
}
