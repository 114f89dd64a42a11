package node

import (
	"math"
	"sync"
)

// SharedRingBuffer is the delay memory a TapIn/TapOut pair shares. TapIn
// writes the signal it sees into the ring every block; TapOut reads back
// a delayed copy. Both sides may run from the same real-time thread (the
// engine never calls two nodes concurrently), but the mutex keeps the
// type safe if an integrator drives taps from more than one thread.
type SharedRingBuffer struct {
	mu         sync.Mutex
	data       []float32
	channels   int
	sampleRate float32
	writePos   int // sample index, always a multiple of channels
}

// NewSharedRingBuffer returns a ring buffer fixed at the given channel
// count. It must be sized via Prepare before use.
func NewSharedRingBuffer(channels int) *SharedRingBuffer {
	return &SharedRingBuffer{channels: channels}
}

// Prepare sizes the ring to hold at least maxDelayTimeMs of audio plus one
// block of maxFrames, and resets it to silence.
func (r *SharedRingBuffer) Prepare(sampleRate, maxDelayTimeMs float32, maxFrames int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delayFrames := int(math.Ceil(float64(maxDelayTimeMs) / 1000 * float64(sampleRate)))
	totalFrames := delayFrames + maxFrames
	r.sampleRate = sampleRate
	r.data = make([]float32, totalFrames*r.channels)
	r.writePos = 0
}

// Reset silences the ring without resizing it.
func (r *SharedRingBuffer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.data {
		r.data[i] = 0
	}
	r.writePos = 0
}

// Write appends interleaved samples to the ring, wrapping as needed, and
// advances the write position.
func (r *SharedRingBuffer) Write(samples []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	length := len(r.data)
	if length == 0 {
		return
	}
	for i, v := range samples {
		r.data[(r.writePos+i)%length] = v
	}
	r.writePos = (r.writePos + len(samples)) % length
}

// Read fills out with samples delayed by delayTimeMs relative to the most
// recent Write. The effective delay is never shorter than len(out)'s
// frame count, so a read can never catch up with the write it reads
// behind.
func (r *SharedRingBuffer) Read(delayTimeMs float32, out []float32, numFrames int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	length := len(r.data)
	if length == 0 {
		for i := range out {
			out[i] = 0
		}
		return
	}

	delayFrames := int(math.Ceil(float64(delayTimeMs) / 1000 * float64(r.sampleRate)))
	effectiveDelayFrames := max(delayFrames, numFrames)
	delaySamples := effectiveDelayFrames * r.channels

	readPos := ((r.writePos-delaySamples)%length + length) % length
	for i := range out {
		out[i] = r.data[(readPos+i)%length]
	}
}
