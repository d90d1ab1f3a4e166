package interfaces

import (
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
)

// Game is the session surface the frontends drive. Everything a renderer
// needs to draw lives in the ECS.
type Game interface {
	StartRound() bool
	Again() bool
	Tap(x, y float64) bool
	SetAttackMode(mode defs.AttackMode)
	AttackMode() defs.AttackMode
	Round() component.RoundState
	World() *entity.ECS
	Resize(w, h float64)
}
