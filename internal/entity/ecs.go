// internal/entity/ecs.go
package entity

import (
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/types"
)

// ECS is the session-owned entity store. Component maps are keyed by entity id;
// an entity exists for as long as any map still holds it.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Sizes       map[types.EntityID]*component.Size
	Ghosts      map[types.EntityID]*component.Ghost
	Projectiles map[types.EntityID]*component.Projectile
	Tweens      map[types.EntityID]*component.Tween
	Rings       map[types.EntityID]*component.Ring
	Particles   map[types.EntityID]*component.Particle
	FloatTexts  map[types.EntityID]*component.FloatText
	Round       *component.RoundState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Sizes:       make(map[types.EntityID]*component.Size),
		Ghosts:      make(map[types.EntityID]*component.Ghost),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Tweens:      make(map[types.EntityID]*component.Tween),
		Rings:       make(map[types.EntityID]*component.Ring),
		Particles:   make(map[types.EntityID]*component.Particle),
		FloatTexts:  make(map[types.EntityID]*component.FloatText),
		Round:       &component.RoundState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Remove deletes every component of an entity.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Sizes, id)
	delete(ecs.Ghosts, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Tweens, id)
	delete(ecs.Rings, id)
	delete(ecs.Particles, id)
	delete(ecs.FloatTexts, id)
}

// ClearActors removes ghosts, projectiles and effects. Round state is left alone.
func (ecs *ECS) ClearActors() {
	clear(ecs.Positions)
	clear(ecs.Sizes)
	clear(ecs.Ghosts)
	clear(ecs.Projectiles)
	clear(ecs.Tweens)
	clear(ecs.Rings)
	clear(ecs.Particles)
	clear(ecs.FloatTexts)
}

// AliveGhosts counts ghosts still in the alive state.
func (ecs *ECS) AliveGhosts() int {
	n := 0
	for _, g := range ecs.Ghosts {
		if g.Alive() {
			n++
		}
	}
	return n
}
