package state

import (
	"time"

	"ghost-fighter/internal/input"
	"ghost-fighter/internal/render"
	"ghost-fighter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*TitleState)(nil)

// TitleState waits for the first start.
type TitleState struct {
	sm *StateMachine
	s  *Session
}

func NewTitleState(sm *StateMachine, s *Session) *TitleState {
	return &TitleState{sm: sm, s: s}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update(dt time.Duration) {
	t.s.tick(dt)
	start := input.PollKeys().Confirm
	for _, p := range t.s.Pointer.Poll(dt) {
		if t.s.Layout.Start.Contains(p.X, p.Y) {
			start = true
		}
	}
	if start {
		t.s.Layout.Start.Press()
		if t.s.Game.StartRound() {
			t.sm.SetState(NewPlayState(t.sm, t.s))
		}
	}
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	t.s.drawPlayfield(screen)
	render.DrawOverlay(screen, t.s.Game.Field, ui.TitleLines(), t.s.Layout.Start)
}

func (t *TitleState) Exit() {}
