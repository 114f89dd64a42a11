package node

import "github.com/arunprasath/audiograph/pkg/audio"

// Impulse emits a single sample of 1.0 on every channel at the first
// frame of the first Process call after Prepare or Reset, then silence
// until the next Reset.
type Impulse struct {
	pending bool
}

// NewImpulse returns an Impulse ready to fire its first sample.
func NewImpulse() *Impulse {
	return &Impulse{pending: true}
}

func (n *Impulse) Kind() Kind { return KindImpulse }

func (n *Impulse) Prepare(sampleRate float32, maxFrames int) { n.pending = true }

func (n *Impulse) Reset() { n.pending = true }

func (n *Impulse) Process(buf audio.Buffer) {
	audio.Clear(buf)
	if n.pending && buf.Frames() > 0 {
		frame := buf.Frame(0)
		for c := range frame {
			frame[c] = 1.0
		}
		n.pending = false
	}
}
