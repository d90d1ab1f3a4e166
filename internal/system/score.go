package system

import (
	"fmt"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/event"
	"ghost-fighter/internal/timer"
	"ghost-fighter/internal/types"
)

// NextCombo applies the streak rule: a hit within window of the previous one
// extends the combo, anything else (including the first hit) starts over at 1.
func NextCombo(combo int, hasHit bool, gap, window time.Duration) int {
	if hasHit && gap <= window {
		return combo + 1
	}
	return 1
}

// ScoreSystem applies hits to the round state.
type ScoreSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	sched      *timer.Scheduler
	effects    *VisualEffectSystem
	window     time.Duration
}

func NewScoreSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, sched *timer.Scheduler, effects *VisualEffectSystem, window time.Duration) *ScoreSystem {
	return &ScoreSystem{ecs: ecs, dispatcher: dispatcher, sched: sched, effects: effects, window: window}
}

// RegisterHit adds one point, updates the combo and shows the float text at
// (x, y). It returns the updated round state.
func (s *ScoreSystem) RegisterHit(ghost types.EntityID, x, y float64) component.RoundState {
	r := s.ecs.Round
	now := s.sched.Now()
	r.Combo = NextCombo(r.Combo, r.HasHit, now-r.LastHitAt, s.window)
	r.HasHit = true
	r.LastHitAt = now
	if r.Combo > r.MaxCombo {
		r.MaxCombo = r.Combo
	}
	r.Score++
	r.ComboPop = config.ComboPopLife

	s.effects.FloatText(x, y, "+1", config.TextLightColor)
	if r.Combo >= 2 {
		s.effects.FloatText(x+config.ComboTextOffsetX, y+config.ComboTextOffsetY, fmt.Sprintf("×%d", r.Combo), config.ComboColor)
	}

	s.dispatcher.Dispatch(event.Event{Type: event.HitScored, Data: event.Hit{Ghost: ghost, X: x, Y: y, Round: *r}})
	return *r
}

// Reset zeroes score and combo. Phase and remaining time belong to RoundSystem.
func (s *ScoreSystem) Reset() {
	r := s.ecs.Round
	r.Score = 0
	r.Combo = 0
	r.MaxCombo = 0
	r.LastHitAt = 0
	r.HasHit = false
	r.ComboPop = 0
}

func (s *ScoreSystem) Update(dt time.Duration) {
	if r := s.ecs.Round; r.ComboPop > 0 {
		r.ComboPop -= dt
		if r.ComboPop < 0 {
			r.ComboPop = 0
		}
	}
}
