// internal/defs/types.go
package defs

import "image/color"

// AttackMode is the player's selected projectile. It never changes scoring.
type AttackMode string

const (
	AttackPoop     AttackMode = "poop"
	AttackTalisman AttackMode = "talisman"
)

// DeathMotion is the direction a hit ghost leaves the screen in.
type DeathMotion int

const (
	MotionDrop DeathMotion = iota
	MotionRise
)

// Cue names a sound effect.
type Cue string

const (
	CueThrow Cue = "throw"
	CueCry   Cue = "cry"
	CueHappy Cue = "happy"
)

// AttackDefinition holds everything cosmetic that depends on the attack mode.
type AttackDefinition struct {
	Mode           AttackMode
	Label          string
	Sprite         string // file name under the asset dir
	Glyph          rune   // terminal rendering
	HitCue         Cue
	Motion         DeathMotion
	RingColor      color.RGBA
	ParticleColor  color.RGBA
	ProjectileTint color.RGBA
}
