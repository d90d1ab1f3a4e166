// internal/app/game.go
package app

import (
	"context"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/event"
	"ghost-fighter/internal/interfaces"
	"ghost-fighter/internal/system"
	"ghost-fighter/internal/timer"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/utils"

	"github.com/rs/zerolog/log"
)

// Game holds one play session. Nothing here is package-level, so any number
// of sessions can run side by side.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Scheduler       *timer.Scheduler
	Rng             *utils.PRNGService
	Tuning          config.Tuning
	Field           *system.Playfield

	TweenSystem        *system.TweenSystem
	VisualEffectSystem *system.VisualEffectSystem
	ScoreSystem        *system.ScoreSystem
	GhostSystem        *system.GhostSystem
	RoundSystem        *system.RoundSystem
	ThrowSystem        *system.ThrowSystem

	sound interfaces.SoundPlayer
}

// NewGame wires a session. field may be nil for the default 480x800 layout
// and sound may be nil for silence.
func NewGame(tuning config.Tuning, field *system.Playfield, sound interfaces.SoundPlayer) *Game {
	if field == nil {
		field = system.DefaultPlayfield()
	}
	if sound == nil {
		sound = nopSound{}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	sched := timer.NewScheduler()
	rng := utils.NewPRNGService(tuning.Seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       sched,
		Rng:             rng,
		Tuning:          tuning,
		Field:           field,
		sound:           sound,
	}
	g.TweenSystem = system.NewTweenSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, rng)
	g.ScoreSystem = system.NewScoreSystem(ecs, eventDispatcher, sched, g.VisualEffectSystem, tuning.ComboWindow())
	// the ghost and throw systems only see the round through g, which
	// delegates to RoundSystem once it exists
	g.GhostSystem = system.NewGhostSystem(ecs, eventDispatcher, sched, rng, g.TweenSystem, field, tuning, g)
	g.RoundSystem = system.NewRoundSystem(ecs, eventDispatcher, sched, rng, tuning, g.GhostSystem, g.ScoreSystem)
	g.ThrowSystem = system.NewThrowSystem(ecs, eventDispatcher, g.TweenSystem, g.GhostSystem, g.ScoreSystem,
		g.VisualEffectSystem, field, g, tuning.ProjectileFlight(), tuning.HitRadiusFactor)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.ThrowLaunched, listener)
	eventDispatcher.Subscribe(event.GhostKilled, listener)

	return g
}

// GameEventListener turns game events into sound cues.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ThrowLaunched:
		l.game.sound.Play(defs.CueThrow)
	case event.GhostKilled:
		if kill, ok := e.Data.(event.Kill); ok {
			l.game.sound.Play(defs.Attack(kill.Mode).HitCue)
		}
	}
}

// Update advances the session by dt: due timers first, then tweens,
// projectiles, combo pulse and effects.
func (g *Game) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	g.Scheduler.Advance(dt)
	g.TweenSystem.Update(dt)
	g.ThrowSystem.Update(dt)
	g.ScoreSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
}

// Context implements interfaces.RoundContext.
func (g *Game) Context() context.Context {
	if g.RoundSystem == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return g.RoundSystem.Context()
}

func (g *Game) Running() bool {
	return g.RoundSystem != nil && g.RoundSystem.Running()
}

// StartRound starts a round from idle; attack mode goes back to the default.
func (g *Game) StartRound() bool {
	if !g.RoundSystem.Start() {
		return false
	}
	g.SetAttackMode(defs.DefaultAttack)
	return true
}

func (g *Game) EndRound() bool {
	return g.RoundSystem.End()
}

func (g *Game) ResetRound() {
	g.RoundSystem.Reset()
}

// Again is the "play again" button: reset to idle, then start.
func (g *Game) Again() bool {
	g.ResetRound()
	return g.StartRound()
}

func (g *Game) ThrowAtGhost(id types.EntityID) system.Resolution {
	return g.ThrowSystem.ThrowAtGhost(id)
}

func (g *Game) ThrowAt(x, y float64) system.Resolution {
	return g.ThrowSystem.ThrowAt(x, y)
}

// Tap is a pointer press on the playfield: a ghost under the pointer gets a
// direct throw, anything else an aimed one. It reports whether a projectile
// was launched.
func (g *Game) Tap(x, y float64) bool {
	if !g.Running() {
		return false
	}
	if id, ok := g.GhostSystem.GhostAt(x, y); ok {
		return g.ThrowAtGhost(id).Launched
	}
	return g.ThrowAt(x, y).Launched
}

func (g *Game) SetAttackMode(mode defs.AttackMode) {
	if !defs.Valid(mode) {
		log.Warn().Str("mode", string(mode)).Msg("unknown attack mode")
		return
	}
	if g.ThrowSystem.Mode() == mode {
		return
	}
	g.ThrowSystem.SetMode(mode)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: mode})
}

func (g *Game) AttackMode() defs.AttackMode {
	return g.ThrowSystem.Mode()
}

func (g *Game) Round() component.RoundState {
	return *g.ECS.Round
}

func (g *Game) Summary() component.Summary {
	return g.RoundSystem.Summary()
}

func (g *Game) World() *entity.ECS {
	return g.ECS
}

// Resize updates the layout. Ghosts already on screen keep their tweens;
// new targets use the new size.
func (g *Game) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.Field.W, g.Field.H = w, h
}

type nopSound struct{}

func (nopSound) Play(defs.Cue) {}

var _ interfaces.Game = (*Game)(nil)
var _ interfaces.RoundContext = (*Game)(nil)
