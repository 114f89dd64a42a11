package audio

import "errors"

// ErrLengthMismatch is returned by NewBuffer when the backing slice's
// length does not equal channels*frames.
var ErrLengthMismatch = errors.New("audio: backing slice length does not match channels*frames")

// Buffer is a non-owning, interleaved view over a []float32. It never
// allocates after construction, so it is safe to pass between nodes on
// the real-time thread.
type Buffer struct {
	data     []float32
	channels int
	frames   int
}

// NewBuffer wraps data as a channels x frames interleaved buffer. It
// returns ErrLengthMismatch if len(data) != channels*frames.
func NewBuffer(data []float32, channels, frames int) (Buffer, error) {
	if len(data) != channels*frames {
		return Buffer{}, ErrLengthMismatch
	}
	return Buffer{data: data, channels: channels, frames: frames}, nil
}

// Channels returns the number of interleaved channels.
func (b Buffer) Channels() int { return b.channels }

// Frames returns the number of frames.
func (b Buffer) Frames() int { return b.frames }

// Raw returns the underlying interleaved sample slice. The returned slice
// aliases the buffer's storage; callers may read or write through it but
// must not resize it.
func (b Buffer) Raw() []float32 { return b.data }

// Frame returns the interleaved samples for frame i, one per channel.
// The returned slice aliases the buffer's storage.
func (b Buffer) Frame(i int) []float32 {
	start := i * b.channels
	return b.data[start : start+b.channels]
}

// SubBuffer returns a view over [startFrame, startFrame+numFrames) of the
// same backing array and channel count. It allocates nothing; this is
// what lets the feedback composite drive its internal nodes one frame at
// a time without leaving the real-time budget.
func (b Buffer) SubBuffer(startFrame, numFrames int) Buffer {
	start := startFrame * b.channels
	end := start + numFrames*b.channels
	return Buffer{data: b.data[start:end], channels: b.channels, frames: numFrames}
}

// Clear zeroes every sample in b.
func Clear(b Buffer) {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Copy copies src into dst sample by sample over their overlapping range.
// If the two buffers have different lengths, only the shared prefix is
// copied; the rest of dst is left untouched.
func Copy(dst, src Buffer) {
	n := min(len(dst.data), len(src.data))
	copy(dst.data[:n], src.data[:n])
}

// Add sums src into dst sample by sample over their overlapping range. If
// the two buffers have different lengths, only the shared prefix is
// summed; the rest of dst is left untouched.
func Add(dst, src Buffer) {
	n := min(len(dst.data), len(src.data))
	for i := 0; i < n; i++ {
		dst.data[i] += src.data[i]
	}
}
