package state

import (
	"time"

	"ghost-fighter/internal/input"
	"ghost-fighter/internal/render"
	"ghost-fighter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

var _ State = (*PlayState)(nil)

// PlayState runs a round: taps throw, the bottom bar switches modes.
type PlayState struct {
	sm *StateMachine
	s  *Session
}

func NewPlayState(sm *StateMachine, s *Session) *PlayState {
	return &PlayState{sm: sm, s: s}
}

func (p *PlayState) Enter() {
	log.Debug().Str("mode", modeLabel(p.s.Game.AttackMode())).Msg("play state")
}

func (p *PlayState) Update(dt time.Duration) {
	keys := input.PollKeys()
	if keys.Pause || !ebiten.IsFocused() {
		p.sm.SetState(NewPauseState(p.sm, p.s, p))
		return
	}
	p.s.selectModeKey(keys.Mode)

	for _, pr := range p.s.Pointer.Poll(dt) {
		if p.s.Layout.Pause.Contains(pr.X, pr.Y) {
			p.s.Layout.Pause.Press()
			p.sm.SetState(NewPauseState(p.sm, p.s, p))
			return
		}
		if b, ok := p.s.Layout.ModeAt(pr.X, pr.Y); ok {
			p.s.selectMode(b)
			continue
		}
		if ui.InActionsBar(p.s.Game.Field, pr.Y) {
			continue
		}
		p.s.Game.Tap(pr.X, pr.Y)
	}

	p.s.tick(dt)
	if r := p.s.Game.Round(); r.GameOver() {
		p.sm.SetState(NewResultState(p.sm, p.s))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.s.drawPlayfield(screen)
	render.DrawPauseButton(screen, p.s.Layout.Pause)
}

func (p *PlayState) Exit() {}
