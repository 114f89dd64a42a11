package node

import (
	"math"

	"github.com/arunprasath/audiograph/pkg/audio"
)

// Saw is a naive (non-band-limited) sawtooth generator sharing Sine's
// phase-accumulator convention: phase runs in [0, 1) and maps linearly to
// [-1, 1).
type Saw struct {
	frequency  float32
	sampleRate float32
	phase      float64
}

// NewSaw returns a Saw oscillating at frequency Hz once Prepare has run.
func NewSaw(frequency float32) *Saw {
	return &Saw{frequency: frequency}
}

func (s *Saw) Kind() Kind { return KindSaw }

func (s *Saw) SetFrequency(hz float32) { s.frequency = hz }

func (s *Saw) Prepare(sampleRate float32, maxFrames int) {
	s.sampleRate = sampleRate
	s.phase = 0
}

func (s *Saw) Reset() { s.phase = 0 }

func (s *Saw) Process(buf audio.Buffer) {
	if s.sampleRate <= 0 {
		audio.Clear(buf)
		return
	}
	step := float64(s.frequency) / float64(s.sampleRate)
	for i := 0; i < buf.Frames(); i++ {
		val := float32(s.phase*2 - 1)
		frame := buf.Frame(i)
		for c := range frame {
			frame[c] = val
		}
		s.phase += step
		s.phase -= math.Floor(s.phase)
	}
}
