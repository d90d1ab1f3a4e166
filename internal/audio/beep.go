package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"ghost-fighter/internal/defs"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// BeepPlayer plays synthesized cues through the beep speaker. It is used by
// the terminal frontend, which has no ebiten audio context.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewBeepPlayer(volume float64) *BeepPlayer {
	return &BeepPlayer{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker. Playing before a successful Initialize is silent.
func (bp *BeepPlayer) Initialize() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.initialized {
		return nil
	}
	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(bp.mixer)
	bp.initialized = true
	return nil
}

func (bp *BeepPlayer) Cleanup() {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if !bp.initialized {
		return
	}
	speaker.Lock()
	bp.mixer.Clear()
	speaker.Unlock()
	bp.initialized = false
}

func (bp *BeepPlayer) Play(cue defs.Cue) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if !bp.initialized {
		return
	}
	tone, ok := Tones[cue]
	if !ok {
		return
	}
	s := withVolume(beep.Take(tone.samples(), newToneStreamer(tone)), bp.volume)
	speaker.Lock()
	bp.mixer.Add(s)
	speaker.Unlock()
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone     Tone
	phase    float64
	position int
	total    int
}

func newToneStreamer(t Tone) *toneStreamer {
	return &toneStreamer{tone: t, total: t.samples()}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		v := s.tone.sample(s.position, s.total, &s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
