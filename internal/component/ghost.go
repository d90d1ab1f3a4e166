package component

import "ghost-fighter/internal/defs"

// GhostState is the lifecycle of a ghost. It only ever moves forward.
type GhostState int

const (
	GhostAlive GhostState = iota
	GhostDead
)

func (s GhostState) String() string {
	if s == GhostAlive {
		return "alive"
	}
	return "dead"
}

// Face picks the sprite a ghost is drawn with.
type Face int

const (
	FaceNormal Face = iota
	FaceSad
	FaceHappy
)

// Ghost is a spawned target.
type Ghost struct {
	Seq   uint64 // sequential spawn number within the session
	State GhostState
	Face  Face
	// KilledBy is set on the alive->dead transition caused by a hit.
	KilledBy defs.AttackMode
}

func (g *Ghost) Alive() bool {
	return g != nil && g.State == GhostAlive
}
