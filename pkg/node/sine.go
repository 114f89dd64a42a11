package node

import (
	"math"

	"github.com/arunprasath/audiograph/pkg/audio"
)

// Sine is a band-unlimited sine wave generator driven by a phase
// accumulator in [0, 1). SetFrequency may be called from the control
// thread between Process calls.
type Sine struct {
	frequency  float32
	sampleRate float32
	phase      float64
}

// NewSine returns a Sine oscillating at frequency Hz once Prepare has run.
func NewSine(frequency float32) *Sine {
	return &Sine{frequency: frequency}
}

func (s *Sine) Kind() Kind { return KindSine }

// SetFrequency changes the oscillation frequency. It takes effect on the
// next sample; the phase accumulator is not reset.
func (s *Sine) SetFrequency(hz float32) { s.frequency = hz }

func (s *Sine) Prepare(sampleRate float32, maxFrames int) {
	s.sampleRate = sampleRate
	s.phase = 0
}

func (s *Sine) Reset() { s.phase = 0 }

func (s *Sine) Process(buf audio.Buffer) {
	if s.sampleRate <= 0 {
		audio.Clear(buf)
		return
	}
	step := float64(s.frequency) / float64(s.sampleRate)
	for i := 0; i < buf.Frames(); i++ {
		val := float32(math.Sin(2 * math.Pi * s.phase))
		frame := buf.Frame(i)
		for c := range frame {
			frame[c] = val
		}
		s.phase += step
		s.phase -= math.Floor(s.phase)
	}
}
