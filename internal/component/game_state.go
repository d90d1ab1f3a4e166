package component

import "time"

// RoundPhase is the round controller's state.
type RoundPhase int

const (
	RoundIdle RoundPhase = iota
	RoundRunning
	RoundEnded
)

func (p RoundPhase) String() string {
	switch p {
	case RoundIdle:
		return "idle"
	case RoundRunning:
		return "running"
	case RoundEnded:
		return "ended"
	}
	return "unknown"
}

// RoundState lives for exactly one round and is reset at round start.
type RoundState struct {
	Phase     RoundPhase
	Remaining time.Duration
	Score     int
	Combo     int
	MaxCombo  int
	LastHitAt time.Duration
	HasHit    bool
	// ComboPop counts down after each hit so renderers can pulse the readout.
	ComboPop time.Duration
}

// GameOver mirrors the classic flag: true once the round has ended.
func (r *RoundState) GameOver() bool {
	return r.Phase == RoundEnded
}

// Summary is reported when a round ends.
type Summary struct {
	Score    int
	MaxCombo int
}
