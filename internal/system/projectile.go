// internal/system/projectile.go
package system

import (
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/event"
	"ghost-fighter/internal/interfaces"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/utils"

	"github.com/rs/zerolog/log"
)

// Resolution is what a throw decided at launch time.
type Resolution struct {
	Launched   bool
	Hit        bool
	Target     types.EntityID
	Projectile types.EntityID
}

// ThrowSystem launches projectiles and resolves them on arrival.
type ThrowSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	tweens     *TweenSystem
	ghosts     *GhostSystem
	score      *ScoreSystem
	effects    *VisualEffectSystem
	field      *Playfield
	round      interfaces.RoundContext
	flight     time.Duration
	// HitRadiusFactor scales the nearest ghost's width into the aimed-throw hit radius.
	HitRadiusFactor float64
	mode            defs.AttackMode
}

func NewThrowSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, tweens *TweenSystem, ghosts *GhostSystem, score *ScoreSystem,
	effects *VisualEffectSystem, field *Playfield, round interfaces.RoundContext, flight time.Duration, hitRadiusFactor float64) *ThrowSystem {
	return &ThrowSystem{
		ecs:             ecs,
		dispatcher:      dispatcher,
		tweens:          tweens,
		ghosts:          ghosts,
		score:           score,
		effects:         effects,
		field:           field,
		round:           round,
		flight:          flight,
		HitRadiusFactor: hitRadiusFactor,
		mode:            defs.DefaultAttack,
	}
}

func (s *ThrowSystem) Mode() defs.AttackMode { return s.mode }

func (s *ThrowSystem) SetMode(mode defs.AttackMode) {
	if defs.Valid(mode) {
		s.mode = mode
	}
}

// ThrowAtGhost is a direct tap: it always targets the ghost's current centre
// and always lands as a hit.
func (s *ThrowSystem) ThrowAtGhost(id types.EntityID) Resolution {
	if !s.round.Running() || !s.ecs.Ghosts[id].Alive() {
		return Resolution{}
	}
	cx, cy, ok := s.ghosts.Center(id)
	if !ok {
		return Resolution{}
	}
	return s.launch(cx, cy, id, true)
}

// ThrowAt is an aimed throw at empty space. The nearest alive ghost counts as
// hit when the tap is within HitRadiusFactor of its width from its centre.
func (s *ThrowSystem) ThrowAt(x, y float64) Resolution {
	if !s.round.Running() {
		return Resolution{}
	}
	if id, ok := s.Aim(x, y); ok {
		cx, cy, _ := s.ghosts.Center(id)
		return s.launch(cx, cy, id, true)
	}
	return s.launch(x, y, 0, false)
}

// Aim returns the ghost an aimed throw at (x, y) would hit, if any.
func (s *ThrowSystem) Aim(x, y float64) (types.EntityID, bool) {
	id, dist, width, ok := s.ghosts.Nearest(x, y)
	if !ok {
		return 0, false
	}
	return id, dist <= width*s.HitRadiusFactor
}

func (s *ThrowSystem) launch(tx, ty float64, target types.EntityID, hit bool) Resolution {
	fromX, fromY := s.field.ThrowOrigin()
	size := s.field.ProjectileSize()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: fromX - size/2, Y: fromY - size/2}
	s.ecs.Sizes[id] = &component.Size{W: size, H: size}
	s.ecs.Projectiles[id] = &component.Projectile{
		Mode:     s.mode,
		FromX:    fromX,
		FromY:    fromY,
		ToX:      tx,
		ToY:      ty,
		TargetID: target,
		Hit:      hit,
	}
	s.tweens.Start(id, component.Position{X: tx - size/2, Y: ty - size/2}, s.flight, utils.Linear, func() { s.land(id) })

	s.dispatcher.Dispatch(event.Event{Type: event.ThrowLaunched, Data: event.Throw{
		Projectile: id, Target: target, Hit: hit, X: tx, Y: ty, Mode: s.mode,
	}})
	if !hit {
		log.Debug().Float64("x", tx).Float64("y", ty).Msg("throw missed")
	}
	return Resolution{Launched: true, Hit: hit, Target: target, Projectile: id}
}

// land removes the projectile, plays the landing effect and, for a hit whose
// ghost is still alive in a running round, scores it and kills the ghost.
func (s *ThrowSystem) land(id types.EntityID) {
	p, ok := s.ecs.Projectiles[id]
	if !ok {
		return
	}
	s.ecs.Remove(id)
	s.effects.Burst(p.ToX, p.ToY, p.Mode)

	scored := false
	if p.Hit && s.round.Running() && s.ecs.Ghosts[p.TargetID].Alive() {
		pos := *s.ecs.Positions[p.TargetID]
		s.score.RegisterHit(p.TargetID, pos.X, pos.Y)
		s.ghosts.Kill(p.TargetID, p.Mode)
		scored = true
	}
	s.dispatcher.Dispatch(event.Event{Type: event.ThrowLanded, Data: event.Throw{
		Projectile: id, Target: p.TargetID, Hit: scored, X: p.ToX, Y: p.ToY, Mode: p.Mode,
	}})
}

// Update spins projectiles in flight.
func (s *ThrowSystem) Update(dt time.Duration) {
	step := 360 * float64(dt) / float64(config.ProjectileSpin)
	for _, p := range s.ecs.Projectiles {
		p.Spin += step
		if p.Spin >= 360 {
			p.Spin -= 360
		}
	}
}
