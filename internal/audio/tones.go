package audio

import (
	"math"
	"os"

	"ghost-fighter/internal/defs"
)

// EnvDisableAudio turns every player into a no-op when set to 1.
const EnvDisableAudio = "GHOSTFIGHT_DISABLE_AUDIO"

// Disabled reports whether audio was switched off through the environment.
func Disabled() bool {
	return os.Getenv(EnvDisableAudio) == "1"
}

// Tone is the synthesized fallback for a cue: a short sine with a pitch glide.
type Tone struct {
	StartHz    float64
	EndHz      float64
	DurationMs int
}

// Tones are played when no sound file is found for a cue.
var Tones = map[defs.Cue]Tone{
	defs.CueThrow: {StartHz: 660, EndHz: 990, DurationMs: 90},
	defs.CueCry:   {StartHz: 440, EndHz: 220, DurationMs: 320},
	defs.CueHappy: {StartHz: 523, EndHz: 1046, DurationMs: 260},
}

// SampleRate is used for synthesized tones and for every decoder.
const SampleRate = 44100

// sample returns the tone's value at sample i, with a short fade at both
// ends so the cue does not click.
func (t Tone) sample(i, n int, phase *float64) float64 {
	p := float64(i) / float64(n)
	freq := t.StartHz + (t.EndHz-t.StartHz)*p
	*phase += freq / SampleRate
	*phase -= math.Floor(*phase)
	env := math.Min(1, math.Min(p*20, (1-p)*8))
	return math.Sin(2*math.Pi**phase) * env
}

func (t Tone) samples() int {
	return SampleRate * t.DurationMs / 1000
}

// synthBeepWAV renders a tone as a minimal 16-bit PCM mono WAV.
func synthBeepWAV(t Tone) []byte {
	numSamples := t.samples()
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16)
	putLE16(buf[20:22], 1) // PCM
	putLE16(buf[22:24], 1) // mono
	putLE32(buf[24:28], SampleRate)
	putLE32(buf[28:32], SampleRate*2)
	putLE16(buf[32:34], 2)
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	amp := 0.25
	phase := 0.0
	for i := 0; i < numSamples; i++ {
		v := int16(t.sample(i, numSamples, &phase) * 32767 * amp)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play(defs.Cue) {}
