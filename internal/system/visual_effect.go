// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/utils"
)

// VisualEffectSystem owns short-lived effects: landing rings, particle bursts
// and floating score text.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// Burst plays the landing effect for mode at (x, y): a ring and a spray of particles.
func (s *VisualEffectSystem) Burst(x, y float64, mode defs.AttackMode) {
	def := defs.Attack(mode)
	id := s.ecs.NewEntity()
	s.ecs.Rings[id] = &component.Ring{
		X: x, Y: y,
		Color:      def.RingColor,
		Duration:   config.RingDuration,
		StartScale: config.RingStartScale,
		EndScale:   config.RingEndScale,
	}
	for i := 0; i < config.ParticleCount; i++ {
		ang := s.rng.Float64() * math.Pi * 2
		spd := s.rng.Range(config.ParticleSpeedMin, config.ParticleSpeedMax)
		pid := s.ecs.NewEntity()
		s.ecs.Particles[pid] = &component.Particle{
			X: x, Y: y,
			DX:       math.Cos(ang) * spd * 0.5,
			DY:       math.Sin(ang) * spd * 0.5,
			Scale:    s.rng.Range(0.6, 1.1),
			Color:    def.ParticleColor,
			Duration: config.ParticleLife,
		}
	}
}

// FloatText shows a label at (x, y) for FloatTextLife.
func (s *VisualEffectSystem) FloatText(x, y float64, text string, c color.RGBA) {
	id := s.ecs.NewEntity()
	s.ecs.FloatTexts[id] = &component.FloatText{X: x, Y: y, Text: text, Color: c, Duration: config.FloatTextLife}
}

// Update ages every effect and drops the ones that have finished.
func (s *VisualEffectSystem) Update(dt time.Duration) {
	for id, ring := range s.ecs.Rings {
		ring.Elapsed += dt
		if ring.Elapsed >= ring.Duration {
			delete(s.ecs.Rings, id)
		}
	}
	for id, p := range s.ecs.Particles {
		p.Elapsed += dt
		if p.Elapsed >= p.Duration {
			delete(s.ecs.Particles, id)
		}
	}
	for id, ft := range s.ecs.FloatTexts {
		ft.Elapsed += dt
		if ft.Elapsed >= ft.Duration {
			delete(s.ecs.FloatTexts, id)
		}
	}
}

// Count returns the number of live effects of every kind.
func (s *VisualEffectSystem) Count() int {
	return len(s.ecs.Rings) + len(s.ecs.Particles) + len(s.ecs.FloatTexts)
}
