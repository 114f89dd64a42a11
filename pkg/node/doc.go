// Package node implements the audio engine's node contract and the
// concrete node set: generators (sine, saw, impulse), a gain processor,
// input/output markers, a tap-in/tap-out delay pair, and the feedback
// sine composite that chains them into a single-sample feedback loop.
//
// # The Node contract
//
// Every node implements three methods, mirroring the control-thread /
// real-time-thread split the rest of this module observes:
//
//	Prepare(sampleRate float32, maxFrames int) // control thread, may allocate
//	Process(buf audio.Buffer)                  // real-time thread, must not allocate
//	Reset()                                    // control thread
//
// Process receives the same buffer AudioGraph.Process hands to every
// other node in the walk: it reads whatever the engine has already
// summed into it from predecessors, and is expected to overwrite it in
// place with this node's output.
//
// # Parameter setters
//
// Setters such as Sine.SetFrequency are plain field writes made from the
// control thread. This package does not provide an audio-thread-safe
// parameter channel; an integrator who needs one builds it on top of
// these setters.
package node
