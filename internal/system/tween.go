package system

import (
	"slices"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/utils"
)

// TweenSystem advances every entity's Tween and writes the sampled Position back.
type TweenSystem struct {
	ecs *entity.ECS
}

func NewTweenSystem(ecs *entity.ECS) *TweenSystem {
	return &TweenSystem{ecs: ecs}
}

// Start replaces any running tween on id with a move from its current
// position to `to`. onDone may be nil.
func (s *TweenSystem) Start(id types.EntityID, to component.Position, d time.Duration, ease utils.Easing, onDone func()) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	s.ecs.Tweens[id] = &component.Tween{
		From:     *pos,
		To:       to,
		Duration: d,
		Ease:     ease,
		OnDone:   onDone,
	}
}

// Cancel drops a tween without running its completion.
func (s *TweenSystem) Cancel(id types.EntityID) {
	delete(s.ecs.Tweens, id)
}

func (s *TweenSystem) Update(dt time.Duration) {
	var finished []types.EntityID
	done := make(map[types.EntityID]func())
	for id, tw := range s.ecs.Tweens {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			delete(s.ecs.Tweens, id)
			continue
		}
		tw.Elapsed += dt
		*pos = tw.Sample()
		if tw.Done() {
			delete(s.ecs.Tweens, id)
			finished = append(finished, id)
			done[id] = tw.OnDone
		}
	}
	// completions run in id order so a seeded session replays identically
	slices.Sort(finished)
	for _, id := range finished {
		if fn := done[id]; fn != nil {
			fn()
		}
	}
}
