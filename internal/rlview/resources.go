package rlview

import (
	"image/color"
	"os"
	"path/filepath"

	"ghost-fighter/internal/audio"
	"ghost-fighter/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// Textures holds the sprites found in the asset directory. A zero texture
// means the view draws that entity procedurally.
type Textures struct {
	ghosts      [len(defs.GhostSprites)]rl.Texture2D
	projectiles map[defs.AttackMode]rl.Texture2D
}

// LoadTextures must run after the window is open.
func LoadTextures(dir string) *Textures {
	t := &Textures{projectiles: make(map[defs.AttackMode]rl.Texture2D)}
	loaded := 0
	for i, name := range defs.GhostSprites {
		if tex, ok := loadTexture(dir, name); ok {
			t.ghosts[i] = tex
			loaded++
		}
	}
	for _, def := range defs.Attacks {
		if tex, ok := loadTexture(dir, def.Sprite); ok {
			t.projectiles[def.Mode] = tex
			loaded++
		}
	}
	log.Info().Int("loaded", loaded).Str("dir", dir).Msg("textures loaded")
	return t
}

func loadTexture(dir, name string) (rl.Texture2D, bool) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		log.Warn().Str("path", path).Msg("sprite missing, drawing procedurally")
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	return tex, tex.ID != 0
}

func (t *Textures) Unload() {
	for _, tex := range t.ghosts {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	for _, tex := range t.projectiles {
		rl.UnloadTexture(tex)
	}
}

// Sounds plays cues through raylib's audio device.
type Sounds struct {
	sounds map[defs.Cue]rl.Sound
}

// LoadSounds must run after rl.InitAudioDevice. Missing files fall back to
// the synthesized tones.
func LoadSounds(dir string) *Sounds {
	s := &Sounds{sounds: make(map[defs.Cue]rl.Sound)}
	if !rl.IsAudioDeviceReady() {
		log.Warn().Msg("audio device not ready, playing silently")
		return s
	}
	for cue, clip := range audio.Clips(dir) {
		ext := ".wav"
		if clip.MP3 {
			ext = ".mp3"
		}
		wave := rl.LoadWaveFromMemory(ext, clip.Data, int32(len(clip.Data)))
		if wave.FrameCount == 0 {
			log.Warn().Str("cue", string(cue)).Msg("sound did not decode")
			continue
		}
		s.sounds[cue] = rl.LoadSoundFromWave(wave)
		rl.UnloadWave(wave)
	}
	return s
}

func (s *Sounds) Play(cue defs.Cue) {
	if snd, ok := s.sounds[cue]; ok {
		rl.PlaySound(snd)
	}
}

func (s *Sounds) Unload() {
	for _, snd := range s.sounds {
		rl.UnloadSound(snd)
	}
}
