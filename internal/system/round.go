package system

import (
	"context"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/event"
	"ghost-fighter/internal/timer"
	"ghost-fighter/internal/utils"

	"github.com/rs/zerolog/log"
)

// RoundSystem is the round controller: idle -> running -> ended.
//
// While running it owns two periodic tasks, the spawn cadence and the clock,
// both bound to the round context. Ending or resetting the round cancels that
// context, which also stops every ghost loop derived from it.
type RoundSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	sched      *timer.Scheduler
	rng        *utils.PRNGService
	tuning     config.Tuning
	ghosts     *GhostSystem
	score      *ScoreSystem

	ctx       context.Context
	cancel    context.CancelFunc
	spawnTask *timer.Task
	clockTask *timer.Task
}

func NewRoundSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, sched *timer.Scheduler, rng *utils.PRNGService,
	tuning config.Tuning, ghosts *GhostSystem, score *ScoreSystem) *RoundSystem {
	rs := &RoundSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		sched:      sched,
		rng:        rng,
		tuning:     tuning,
		ghosts:     ghosts,
		score:      score,
	}
	dispatcher.Subscribe(event.GhostKilled, rs)
	return rs
}

// Context returns the current round's context. Outside a running round it is
// already cancelled.
func (s *RoundSystem) Context() context.Context {
	if s.ctx == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return s.ctx
}

func (s *RoundSystem) Running() bool {
	return s.ecs.Round.Phase == component.RoundRunning
}

func (s *RoundSystem) Phase() component.RoundPhase {
	return s.ecs.Round.Phase
}

// Start begins a round from idle. From any other phase it returns false;
// an ended round has to be Reset first.
func (s *RoundSystem) Start() bool {
	if s.ecs.Round.Phase != component.RoundIdle {
		return false
	}
	s.stop()
	s.ctx, s.cancel = context.WithCancel(context.Background())

	r := s.ecs.Round
	r.Phase = component.RoundRunning
	r.Remaining = s.tuning.RoundDuration()
	s.score.Reset()

	s.ghosts.Clear()
	s.ecs.ClearActors()

	n := s.rng.IntRange(s.tuning.MinGhosts, s.tuning.MinGhosts+s.tuning.InitialExtra)
	for i := 0; i < n; i++ {
		s.ghosts.Spawn()
	}

	s.spawnTask = s.sched.Every(s.ctx, s.tuning.SpawnInterval(), s.spawnTick)
	s.clockTask = s.sched.Every(s.ctx, s.tuning.TickInterval(), s.clockTick)

	log.Info().Int("ghosts", n).Dur("duration", r.Remaining).Msg("round started")
	s.dispatcher.Dispatch(event.Event{Type: event.RoundStarted})
	return true
}

func (s *RoundSystem) spawnTick() {
	if !s.Running() {
		return
	}
	if s.ecs.AliveGhosts() < s.tuning.MaxGhosts {
		s.ghosts.Spawn()
	}
}

func (s *RoundSystem) clockTick() {
	if !s.Running() {
		return
	}
	r := s.ecs.Round
	r.Remaining -= s.tuning.TickInterval()
	if r.Remaining <= 0 {
		r.Remaining = 0
		s.End()
	}
}

// End stops both periodic tasks, marks every ghost dead and publishes the
// summary. Only the first call of a round has any effect.
func (s *RoundSystem) End() bool {
	if !s.Running() {
		return false
	}
	r := s.ecs.Round
	r.Phase = component.RoundEnded
	s.stop()
	s.ghosts.KillAll()

	summary := s.Summary()
	log.Info().Int("score", summary.Score).Int("max_combo", summary.MaxCombo).Msg("round ended")
	s.dispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: summary})
	return true
}

// Reset returns to idle from any phase and clears the playfield.
func (s *RoundSystem) Reset() {
	s.stop()
	s.ghosts.Clear()
	s.ecs.ClearActors()
	s.ecs.Round.Phase = component.RoundIdle
	s.dispatcher.Dispatch(event.Event{Type: event.RoundReset})
}

func (s *RoundSystem) Summary() component.Summary {
	return component.Summary{Score: s.ecs.Round.Score, MaxCombo: s.ecs.Round.MaxCombo}
}

func (s *RoundSystem) stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.spawnTask.Cancel()
	s.clockTask.Cancel()
}

// OnEvent keeps the pressure up: a kill that drops the alive count below the
// minimum spawns a replacement straight away.
func (s *RoundSystem) OnEvent(e event.Event) {
	if e.Type != event.GhostKilled || !s.Running() {
		return
	}
	if s.ecs.AliveGhosts() < s.tuning.MinGhosts {
		s.ghosts.Spawn()
	}
}
