package node

import "github.com/arunprasath/audiograph/pkg/audio"

// FeedbackSine is a self-contained feedback loop: the previous frame's
// delayed output is mapped to a new oscillation frequency every frame,
// producing a chaotic, self-modulating tone from a single node. It
// processes one frame at a time via audio.Buffer.SubBuffer, so it never
// allocates regardless of the caller's block size.
//
// The chain per frame is: read delayed value -> map to frequency -> drive
// sine -> apply gain -> write into the delay line.
type FeedbackSine struct {
	sine   *Sine
	gain   *Gain
	tapIn  *TapIn
	tapOut *TapOut
}

// NewFeedbackSine returns a FeedbackSine with the reference parameters:
// a base sine, a 0.5 gain stage, and a tap pair with a 100ms delay buffer
// read back with no added delay.
func NewFeedbackSine() *FeedbackSine {
	tapIn, tapOut := NewTapPair(100.0, 0.0)
	return &FeedbackSine{
		sine:   NewSine(110.0),
		gain:   NewGain(0.5),
		tapIn:  tapIn,
		tapOut: tapOut,
	}
}

func (f *FeedbackSine) Kind() Kind { return KindFeedbackSine }

func (f *FeedbackSine) Prepare(sampleRate float32, maxFrames int) {
	f.sine.Prepare(sampleRate, 1)
	f.gain.Prepare(sampleRate, 1)
	f.tapIn.Prepare(sampleRate, 1)
	f.tapOut.Prepare(sampleRate, 1)
}

func (f *FeedbackSine) Reset() {
	f.sine.Reset()
	f.gain.Reset()
	f.tapIn.Reset()
	f.tapOut.Reset()
}

func (f *FeedbackSine) Process(buf audio.Buffer) {
	for i := 0; i < buf.Frames(); i++ {
		frame := buf.SubBuffer(i, 1)

		f.tapOut.Process(frame)
		tapOutValue := frame.Frame(0)[0]
		freq := (tapOutValue+1.0)*490.0 + 20.0
		f.sine.SetFrequency(freq)

		f.sine.Process(frame)
		f.gain.Process(frame)
		f.tapIn.Process(frame)
	}
}
