package node

import "github.com/arunprasath/audiograph/pkg/audio"

// Gain scales every sample of its input by a constant factor. It is
// stateless: Prepare and Reset are no-ops.
type Gain struct {
	gain float32
}

// NewGain returns a Gain that scales its input by gain.
func NewGain(gain float32) *Gain {
	return &Gain{gain: gain}
}

func (g *Gain) Kind() Kind { return KindGain }

// SetGain changes the scale factor. Takes effect on the next Process call.
func (g *Gain) SetGain(gain float32) { g.gain = gain }

func (g *Gain) Prepare(sampleRate float32, maxFrames int) {}

func (g *Gain) Reset() {}

func (g *Gain) Process(buf audio.Buffer) {
	data := buf.Raw()
	for i := range data {
		data[i] *= g.gain
	}
}
