package system

import (
	"context"
	"math"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/event"
	"ghost-fighter/internal/interfaces"
	"ghost-fighter/internal/timer"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/utils"

	"github.com/rs/zerolog/log"
)

// GhostSystem spawns ghosts and runs each one's enter/linger/exit loop.
//
// Every ghost gets a context derived from the round context. Killing the
// ghost or ending the round cancels it, and every continuation of the loop
// checks it before doing anything, so stale callbacks die quietly.
type GhostSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	sched      *timer.Scheduler
	rng        *utils.PRNGService
	tweens     *TweenSystem
	field      *Playfield
	tuning     config.Tuning
	round      interfaces.RoundContext

	lives map[types.EntityID]context.CancelFunc
	seq   uint64
}

func NewGhostSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, sched *timer.Scheduler, rng *utils.PRNGService,
	tweens *TweenSystem, field *Playfield, tuning config.Tuning, round interfaces.RoundContext) *GhostSystem {
	return &GhostSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		sched:      sched,
		rng:        rng,
		tweens:     tweens,
		field:      field,
		tuning:     tuning,
		round:      round,
		lives:      make(map[types.EntityID]context.CancelFunc),
	}
}

// Spawn places a new ghost just outside a random edge and starts its loop on
// the next frame.
func (s *GhostSystem) Spawn() types.EntityID {
	id := s.ecs.NewEntity()
	s.seq++

	w := s.field.BaseGhostWidth() * s.rng.Range(config.GhostJitterMin, config.GhostJitterMax)
	entry := s.offscreenPoint()
	s.ecs.Positions[id] = &entry
	s.ecs.Sizes[id] = &component.Size{W: w, H: w}
	s.ecs.Ghosts[id] = &component.Ghost{Seq: s.seq, State: component.GhostAlive, Face: component.FaceNormal}

	ctx, cancel := context.WithCancel(s.round.Context())
	s.lives[id] = cancel

	log.Debug().Uint64("ghost", uint64(id)).Float64("x", entry.X).Float64("y", entry.Y).Msg("ghost spawned")
	s.dispatcher.Dispatch(event.Event{Type: event.GhostSpawned, Data: id})

	s.sched.After(ctx, 0, func() { s.enter(ctx, id) })
	return id
}

// enter runs one fly-in, linger, fly-out, pause cycle and re-enters itself.
func (s *GhostSystem) enter(ctx context.Context, id types.EntityID) {
	if !s.active(ctx, id) {
		return
	}
	size := s.ecs.Sizes[id]
	pad := float64(config.GhostPad)
	maxX := math.Max(pad, s.field.W-size.W-pad)
	maxY := math.Max(pad, math.Max(0, s.field.H-s.field.ActionsH-size.H-pad))
	target := component.Position{
		X: float64(s.rng.IntRange(int(pad), int(maxX))),
		Y: float64(s.rng.IntRange(int(pad), int(maxY))),
	}

	flyIn := s.rng.Millis(s.tuning.FlyIn.Min, s.tuning.FlyIn.Max)
	linger := s.rng.Millis(s.tuning.Linger.Min, s.tuning.Linger.Max)
	flyOut := s.rng.Millis(s.tuning.FlyOut.Min, s.tuning.FlyOut.Max)

	s.tweens.Start(id, target, flyIn, utils.Linear, func() {
		if !s.active(ctx, id) {
			return
		}
		s.sched.After(ctx, linger, func() {
			if !s.active(ctx, id) {
				return
			}
			exit := s.offscreenPoint()
			s.tweens.Start(id, exit, flyOut, utils.Linear, func() {
				if !s.active(ctx, id) {
					return
				}
				pause := s.rng.Millis(s.tuning.Pause.Min, s.tuning.Pause.Max)
				s.sched.After(ctx, pause, func() { s.enter(ctx, id) })
			})
		})
	})
}

func (s *GhostSystem) active(ctx context.Context, id types.EntityID) bool {
	if ctx.Err() != nil || !s.round.Running() {
		return false
	}
	return s.ecs.Ghosts[id].Alive()
}

// offscreenPoint picks a side uniformly and a point just beyond it.
func (s *GhostSystem) offscreenPoint() component.Position {
	m := float64(config.OffscreenMargin)
	w, h := s.field.W, s.field.H
	spanX := int(w) - config.OffscreenSpanTrim
	spanY := int(h) - config.OffscreenSpanTrim
	switch s.rng.IntRange(0, 3) {
	case 0:
		return component.Position{X: -m, Y: float64(s.rng.IntRange(0, spanY))}
	case 1:
		return component.Position{X: w + m, Y: float64(s.rng.IntRange(0, spanY))}
	case 2:
		return component.Position{X: float64(s.rng.IntRange(0, spanX)), Y: -m}
	default:
		return component.Position{X: float64(s.rng.IntRange(0, spanX)), Y: h + m}
	}
}

// Kill moves an alive ghost to dead and starts its death motion. It returns
// false if the ghost is unknown or already dead.
func (s *GhostSystem) Kill(id types.EntityID, mode defs.AttackMode) bool {
	g := s.ecs.Ghosts[id]
	if !g.Alive() {
		return false
	}
	g.State = component.GhostDead
	g.KilledBy = mode
	s.release(id)

	pos := s.ecs.Positions[id]
	def := defs.Attack(mode)
	var to component.Position
	duration := config.DropDuration
	switch def.Motion {
	case defs.MotionRise:
		g.Face = component.FaceHappy
		to = component.Position{X: pos.X, Y: pos.Y - (s.field.H + config.RiseOvershoot)}
		duration = config.RiseDuration
	default:
		g.Face = component.FaceSad
		to = component.Position{X: pos.X, Y: pos.Y + s.field.H + config.DropOvershoot, Rot: config.DropRotation}
	}
	s.tweens.Start(id, to, duration, utils.DeathEasing, func() { s.remove(id) })

	log.Debug().Uint64("ghost", uint64(id)).Str("mode", string(mode)).Msg("ghost killed")
	s.dispatcher.Dispatch(event.Event{Type: event.GhostKilled, Data: event.Kill{Ghost: id, Mode: mode}})
	return true
}

// KillAll marks every ghost dead without any death motion; used when the round ends.
func (s *GhostSystem) KillAll() {
	for id, g := range s.ecs.Ghosts {
		if g.State == component.GhostAlive {
			g.State = component.GhostDead
		}
		s.release(id)
	}
}

// Clear cancels every ghost's loop. The caller clears the ECS.
func (s *GhostSystem) Clear() {
	for id := range s.lives {
		s.release(id)
	}
}

func (s *GhostSystem) release(id types.EntityID) {
	if cancel, ok := s.lives[id]; ok {
		cancel()
		delete(s.lives, id)
	}
}

func (s *GhostSystem) remove(id types.EntityID) {
	s.release(id)
	s.ecs.Remove(id)
	s.dispatcher.Dispatch(event.Event{Type: event.GhostRemoved, Data: id})
}

// Center returns the centre of a ghost's box.
func (s *GhostSystem) Center(id types.EntityID) (float64, float64, bool) {
	pos, ok := s.ecs.Positions[id]
	size, ok2 := s.ecs.Sizes[id]
	if !ok || !ok2 {
		return 0, 0, false
	}
	x, y := pos.Center(*size)
	return x, y, true
}

// GhostAt returns the alive ghost under (x, y). Overlaps resolve to the most
// recently spawned ghost, which is the one drawn on top.
func (s *GhostSystem) GhostAt(x, y float64) (types.EntityID, bool) {
	var best types.EntityID
	for id, g := range s.ecs.Ghosts {
		if !g.Alive() {
			continue
		}
		pos, size := s.ecs.Positions[id], s.ecs.Sizes[id]
		if pos == nil || size == nil || !pos.Contains(*size, x, y) {
			continue
		}
		if id > best {
			best = id
		}
	}
	return best, best != 0
}

// Nearest is a linear scan for the alive ghost whose centre is closest to
// (x, y). It also returns that distance and the ghost's width.
func (s *GhostSystem) Nearest(x, y float64) (id types.EntityID, dist, width float64, ok bool) {
	dist = math.Inf(1)
	for gid, g := range s.ecs.Ghosts {
		if !g.Alive() {
			continue
		}
		cx, cy, found := s.Center(gid)
		if !found {
			continue
		}
		d := utils.Hypot(cx, cy, x, y)
		if d < dist || (d == dist && gid < id) {
			id, dist, width, ok = gid, d, s.ecs.Sizes[gid].W, true
		}
	}
	return id, dist, width, ok
}
