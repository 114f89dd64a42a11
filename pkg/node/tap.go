package node

import "github.com/arunprasath/audiograph/pkg/audio"

// defaultChannels is the fixed interleaved channel count this release
// supports (see Config.NumChannels).
const defaultChannels = 2

// TapIn writes the signal it sees into a SharedRingBuffer every block and
// passes it through unchanged; it is the write side of a delay line.
type TapIn struct {
	ring           *SharedRingBuffer
	maxDelayTimeMs float32
}

// TapOut reads delayTimeMs behind the most recent TapIn write on the same
// ring, overwriting its buffer with the delayed signal.
type TapOut struct {
	ring        *SharedRingBuffer
	delayTimeMs float32
}

// NewTapPair returns a TapIn/TapOut sharing a single delay line. maxDelayTimeMs
// bounds how far TapOut.SetDelay may reach back; delayTimeMs is the
// initial read delay.
func NewTapPair(maxDelayTimeMs, delayTimeMs float32) (*TapIn, *TapOut) {
	ring := NewSharedRingBuffer(defaultChannels)
	in := &TapIn{ring: ring, maxDelayTimeMs: maxDelayTimeMs}
	out := &TapOut{ring: ring, delayTimeMs: delayTimeMs}
	return in, out
}

func (n *TapIn) Kind() Kind { return KindTapIn }

func (n *TapIn) Prepare(sampleRate float32, maxFrames int) {
	n.ring.Prepare(sampleRate, n.maxDelayTimeMs, maxFrames)
}

func (n *TapIn) Reset() { n.ring.Reset() }

func (n *TapIn) Process(buf audio.Buffer) {
	n.ring.Write(buf.Raw())
}

func (n *TapOut) Kind() Kind { return KindTapOut }

// SetDelay changes the read delay. Must not exceed the paired TapIn's
// maxDelayTimeMs or the read will be clamped to whatever history the ring
// actually holds.
func (n *TapOut) SetDelay(delayTimeMs float32) { n.delayTimeMs = delayTimeMs }

func (n *TapOut) Prepare(sampleRate float32, maxFrames int) {}

// Reset is a no-op: the ring is owned and reset by the paired TapIn.
func (n *TapOut) Reset() {}

func (n *TapOut) Process(buf audio.Buffer) {
	n.ring.Read(n.delayTimeMs, buf.Raw(), buf.Frames())
}
