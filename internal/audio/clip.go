package audio

import (
	"os"
	"path/filepath"

	"ghost-fighter/internal/defs"

	"github.com/rs/zerolog/log"
)

// Clip is an encoded cue, WAV unless MP3 is set.
type Clip struct {
	Data []byte
	MP3  bool
}

// LoadClip reads <name>.wav, then <name>.mp3, from dir.
func LoadClip(dir, name string) (Clip, bool) {
	for _, ext := range []string{".wav", ".mp3"} {
		b, err := os.ReadFile(filepath.Join(dir, name+ext))
		if err != nil || len(b) == 0 {
			continue
		}
		return Clip{Data: b, MP3: ext == ".mp3"}, true
	}
	return Clip{}, false
}

// Clips returns a clip for every cue, synthesizing the ones with no file in dir.
func Clips(dir string) map[defs.Cue]Clip {
	clips := make(map[defs.Cue]Clip, len(defs.SoundFiles))
	for cue, name := range defs.SoundFiles {
		if c, ok := LoadClip(dir, name); ok {
			clips[cue] = c
			continue
		}
		log.Debug().Str("cue", string(cue)).Msg("sound file missing, using synthesized tone")
		clips[cue] = Clip{Data: synthBeepWAV(Tones[cue])}
	}
	return clips
}
