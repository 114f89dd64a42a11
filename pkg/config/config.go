package config

// Config holds audio engine configuration. All configuration options are
// centralized here for easy management and validation.
type Config struct {
	// SampleRate is the host sample rate in Hz. Propagated to every node
	// via AudioGraph.Prepare.
	SampleRate float32

	// MaxBlockSize is the frames-per-block ceiling a host passes to
	// AudioGraph.Prepare (cmd/enginedemo does so). AudioGraph itself does
	// not read this field: Process checks frame counts, and TapIn/TapOut
	// size their ring, against the max block size given to Prepare.
	MaxBlockSize int

	// NumChannels is the interleaved channel count every buffer in the
	// graph uses. Fixed at 2 for this release.
	NumChannels int

	// MaxNodes and MaxEdges bound topology size. AddNode/AddEdge beyond
	// these limits fail rather than let an integrator grow a graph
	// without bound on the control thread.
	MaxNodes int
	MaxEdges int

	// DefaultMaxDelayTimeMs is a delay-line ceiling in milliseconds. It is
	// validated but not read elsewhere in this module: node.NewTapPair
	// always takes an explicit maxDelayTimeMs.
	DefaultMaxDelayTimeMs float32

	// Strict selects how the engine reacts to a violated real-time
	// precondition (Process called with a channel count other than
	// NumChannels, a frame count over the max block size given to
	// Prepare, or an ID that does not resolve to a node): true panics
	// immediately so the violation surfaces in development and CI; false
	// degrades by clearing the output buffer and returning
	// ErrPreconditionViolated, keeping a production audio callback alive.
	Strict bool
}

// Default returns a Config with production-ready default values.
func Default() *Config {
	return &Config{
		SampleRate:            44100.0,
		MaxBlockSize:          2048,
		NumChannels:           2,
		MaxNodes:              1000,
		MaxEdges:              5000,
		DefaultMaxDelayTimeMs: 1000.0,
		Strict:                false,
	}
}

// Development returns a Config with Strict enabled so precondition
// violations panic immediately instead of degrading silently.
func Development() *Config {
	cfg := Default()
	cfg.Strict = true
	return cfg
}

// Production returns a Config tuned for a live audio callback: never
// panics, degrades to silence on a violated precondition.
func Production() *Config {
	cfg := Default()
	cfg.Strict = false
	return cfg
}

// Testing returns a Config with small limits and Strict enabled, suited
// to fast, deterministic unit tests.
func Testing() *Config {
	cfg := Default()
	cfg.SampleRate = 4.0
	cfg.MaxBlockSize = 64
	cfg.MaxNodes = 100
	cfg.MaxEdges = 500
	cfg.DefaultMaxDelayTimeMs = 100.0
	cfg.Strict = true
	return cfg
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if c.MaxBlockSize <= 0 {
		return ErrInvalidMaxBlockSize
	}
	if c.NumChannels <= 0 {
		return ErrInvalidNumChannels
	}
	if c.MaxNodes < 0 {
		return ErrInvalidMaxNodes
	}
	if c.MaxEdges < 0 {
		return ErrInvalidMaxEdges
	}
	if c.DefaultMaxDelayTimeMs < 0 {
		return ErrInvalidMaxDelayTime
	}
	return nil
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
