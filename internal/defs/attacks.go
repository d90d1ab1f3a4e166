package defs

import "image/color"

// Attacks is the library of attack modes, in button order.
var Attacks = []AttackDefinition{
	{
		Mode:           AttackPoop,
		Label:          "POOP",
		Sprite:         "shit.png",
		Glyph:          '@',
		HitCue:         CueCry,
		Motion:         MotionDrop,
		RingColor:      color.RGBA{139, 90, 43, 230},
		ParticleColor:  color.RGBA{176, 122, 60, 255},
		ProjectileTint: color.RGBA{150, 95, 40, 255},
	},
	{
		Mode:           AttackTalisman,
		Label:          "TALISMAN",
		Sprite:         "talisman.png",
		Glyph:          '#',
		HitCue:         CueHappy,
		Motion:         MotionRise,
		RingColor:      color.RGBA{255, 244, 179, 240},
		ParticleColor:  color.RGBA{255, 232, 122, 255},
		ProjectileTint: color.RGBA{250, 220, 90, 255},
	},
}

// DefaultAttack is selected at the start of every round.
const DefaultAttack = AttackPoop

// Attack returns the definition for mode, falling back to the default mode.
func Attack(mode AttackMode) AttackDefinition {
	for _, def := range Attacks {
		if def.Mode == mode {
			return def
		}
	}
	return Attacks[0]
}

// Valid reports whether mode is a known attack mode.
func Valid(mode AttackMode) bool {
	for _, def := range Attacks {
		if def.Mode == mode {
			return true
		}
	}
	return false
}

// GhostSprites maps faces (normal, sad, happy) to asset file names.
var GhostSprites = [3]string{"char.png", "charsad.png", "charhappy.png"}

// SoundFiles maps cues to asset file names; .wav and .mp3 are both tried.
var SoundFiles = map[Cue]string{
	CueThrow: "throw",
	CueCry:   "cry",
	CueHappy: "happy",
}
