package state

import (
	"time"

	"ghost-fighter/internal/input"
	"ghost-fighter/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the virtual clock. Nothing is ticked, so round time,
// ghost loops and tweens all hold still until the player resumes.
type PauseState struct {
	sm            *StateMachine
	s             *Session
	previousState State
}

func NewPauseState(sm *StateMachine, s *Session, prev State) *PauseState {
	return &PauseState{sm: sm, s: s, previousState: prev}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(dt time.Duration) {
	if !ebiten.IsFocused() {
		return
	}
	resume := input.PollKeys().Pause || len(p.s.Pointer.Poll(dt)) > 0
	if resume {
		p.sm.SetState(p.previousState)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	if p.previousState != nil {
		p.previousState.Draw(screen)
	}
	render.DrawOverlay(screen, p.s.Game.Field, []string{"PAUSED", "tap or press P to resume"}, nil)
}

func (p *PauseState) Exit() {}
