package interfaces

import "ghost-fighter/internal/defs"

// SoundPlayer plays a cue and never reports failure; a missing device or file
// just means silence.
type SoundPlayer interface {
	Play(cue defs.Cue)
}
