package node

import "github.com/arunprasath/audiograph/pkg/audio"

// Node is the contract every graph node implements. Prepare and Reset run
// on the control thread and may allocate; Process runs on the real-time
// thread and must not.
type Node interface {
	// Prepare is called once before the first Process call, and again
	// whenever the sample rate or maximum block size changes. It resets
	// any internal state to what Reset would produce.
	Prepare(sampleRate float32, maxFrames int)

	// Process overwrites buf in place with this node's output, reading
	// whatever AudioGraph has already summed into buf from predecessors.
	Process(buf audio.Buffer)

	// Reset clears internal state (phase accumulators, ring buffers,
	// pending flags) without forgetting parameters set via the node's
	// setters.
	Reset()
}

// Kind identifies a node's concrete type for logging, telemetry, and
// diagnostics. It carries no behavior of its own.
type Kind string

const (
	KindSine         Kind = "sine"
	KindSaw          Kind = "saw"
	KindGain         Kind = "gain"
	KindImpulse      Kind = "impulse"
	KindInput        Kind = "input"
	KindOutput       Kind = "output"
	KindTapIn        Kind = "tap_in"
	KindTapOut       Kind = "tap_out"
	KindFeedbackSine Kind = "feedback_sine"
)

// Kinded is implemented by every node in this package. Callers that need
// to label a node (the engine's observer events, telemetry attributes)
// type-assert to this interface rather than requiring it as part of Node,
// since a hand-written integrator node has no obligation to self-describe.
type Kinded interface {
	Kind() Kind
}
