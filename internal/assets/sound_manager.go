package assets

import (
	"bytes"
	"io"
	"sync"

	"ghost-fighter/internal/audio"
	"ghost-fighter/internal/defs"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SoundManager plays cues through ebiten's audio context.
type SoundManager struct {
	ctx   *ebaudio.Context
	clips map[defs.Cue]audio.Clip
}

var (
	audioOnce sync.Once
	audioCtx  *ebaudio.Context
)

func getAudioContext() *ebaudio.Context {
	audioOnce.Do(func() {
		audioCtx = ebaudio.NewContext(audio.SampleRate)
	})
	return audioCtx
}

// NewSoundManager loads every cue from dir. With enabled false, or audio
// disabled through the environment, the manager stays silent.
func NewSoundManager(dir string, enabled bool) *SoundManager {
	m := &SoundManager{}
	if !enabled || audio.Disabled() {
		return m
	}
	m.ctx = getAudioContext()
	m.clips = audio.Clips(dir)
	return m
}

// Play starts a fresh player for cue so overlapping cues are allowed.
// Decode and device errors are ignored.
func (m *SoundManager) Play(cue defs.Cue) {
	if m == nil || m.ctx == nil {
		return
	}
	clip, ok := m.clips[cue]
	if !ok || len(clip.Data) == 0 {
		return
	}
	var (
		stream io.ReadSeeker
		err    error
	)
	if clip.MP3 {
		stream, err = mp3.DecodeWithSampleRate(audio.SampleRate, bytes.NewReader(clip.Data))
	} else {
		stream, err = wav.DecodeWithSampleRate(audio.SampleRate, bytes.NewReader(clip.Data))
	}
	if err != nil {
		return
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}
