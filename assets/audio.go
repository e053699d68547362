package assets

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	audioContext *audio.Context
	contextOnce  sync.Once
)

// Context returns the process-wide audio context. ebiten allows only one.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Cue describes a short synthesized sound: a tone that slides from Freq to
// EndFreq and fades out.
type Cue struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Volume   float64
	Square   bool
}

// Tone renders c as 16-bit little-endian stereo PCM, the format
// audio.Context.NewPlayerFromBytes expects.
func Tone(c Cue) []byte {
	n := int(float64(SampleRate) * c.Duration.Seconds())
	if n <= 0 {
		return nil
	}
	end := c.EndFreq
	if end == 0 {
		end = c.Freq
	}
	vol := math.Max(0, math.Min(1, c.Volume))

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := c.Freq + (end-c.Freq)*t
		phase += 2 * math.Pi * freq / SampleRate

		s := math.Sin(phase)
		if c.Square {
			s = math.Copysign(0.6, s)
		}
		// Short linear attack, then fade to silence.
		env := 1 - t
		if i < 64 {
			env *= float64(i) / 64
		}
		v := int16(s * env * vol * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// NewCuePlayer renders c and wraps it in a player on the shared context.
func NewCuePlayer(c Cue) *audio.Player {
	return Context().NewPlayerFromBytes(Tone(c))
}
