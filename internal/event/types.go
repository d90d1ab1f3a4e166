// internal/event/types.go
package event

import (
	"ghost-fighter/internal/component"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/types"
)

const (
	RoundStarted  EventType = "RoundStarted"  // no data
	RoundEnded    EventType = "RoundEnded"    // component.Summary
	RoundReset    EventType = "RoundReset"    // no data
	GhostSpawned  EventType = "GhostSpawned"  // types.EntityID
	GhostKilled   EventType = "GhostKilled"   // Kill
	GhostRemoved  EventType = "GhostRemoved"  // types.EntityID
	ThrowLaunched EventType = "ThrowLaunched" // Throw
	ThrowLanded   EventType = "ThrowLanded"   // Throw
	HitScored     EventType = "HitScored"     // Hit
	ModeChanged   EventType = "ModeChanged"   // defs.AttackMode
)

// Kill is sent when a ghost makes its alive->dead transition from a hit.
type Kill struct {
	Ghost types.EntityID
	Mode  defs.AttackMode
}

// Throw describes a projectile at launch and on landing.
type Throw struct {
	Projectile types.EntityID
	Target     types.EntityID // 0 on a miss
	Hit        bool
	X, Y       float64
	Mode       defs.AttackMode
}

// Hit is sent after the score tracker has applied a hit.
type Hit struct {
	Ghost types.EntityID
	X, Y  float64
	Round component.RoundState
}
