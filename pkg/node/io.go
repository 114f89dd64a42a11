package node

import "github.com/arunprasath/audiograph/pkg/audio"

// Input marks a graph node as a host input: AudioGraph overwrites the
// node's output buffer with the caller-supplied input buffer before
// Process runs, so Input.Process is a no-op pass-through.
type Input struct{}

// NewInput returns an Input marker node.
func NewInput() *Input { return &Input{} }

func (n *Input) Kind() Kind { return KindInput }

func (n *Input) Prepare(sampleRate float32, maxFrames int) {}
func (n *Input) Reset()                                    {}
func (n *Input) Process(buf audio.Buffer)                  {}

// Output marks a graph node as the host output: AudioGraph copies this
// node's buffer out to the caller after the walk completes, so
// Output.Process is a no-op pass-through.
type Output struct{}

// NewOutput returns an Output marker node.
func NewOutput() *Output { return &Output{} }

func (n *Output) Kind() Kind { return KindOutput }

func (n *Output) Prepare(sampleRate float32, maxFrames int) {}
func (n *Output) Reset()                                    {}
func (n *Output) Process(buf audio.Buffer)                  {}
