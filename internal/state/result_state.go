package state

import (
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/input"
	"ghost-fighter/internal/render"
	"ghost-fighter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*ResultState)(nil)

// ResultState shows the summary. Ghost death tweens keep playing behind it.
type ResultState struct {
	sm      *StateMachine
	s       *Session
	summary component.Summary
}

func NewResultState(sm *StateMachine, s *Session) *ResultState {
	return &ResultState{sm: sm, s: s, summary: s.Game.Summary()}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Update(dt time.Duration) {
	r.s.tick(dt)
	again := input.PollKeys().Confirm
	for _, p := range r.s.Pointer.Poll(dt) {
		if r.s.Layout.Again.Contains(p.X, p.Y) {
			again = true
		}
	}
	if again {
		r.s.Layout.Again.Press()
		if r.s.Game.Again() {
			r.sm.SetState(NewPlayState(r.sm, r.s))
		}
	}
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	r.s.drawPlayfield(screen)
	render.DrawOverlay(screen, r.s.Game.Field, ui.SummaryLines(r.summary), r.s.Layout.Again)
}

func (r *ResultState) Exit() {}
