package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidSampleRate   = errors.New("invalid sample rate: must be positive")
	ErrInvalidMaxBlockSize = errors.New("invalid max block size: must be positive")
	ErrInvalidNumChannels  = errors.New("invalid number of channels: must be positive")
	ErrInvalidMaxNodes     = errors.New("invalid max nodes: must be non-negative")
	ErrInvalidMaxEdges     = errors.New("invalid max edges: must be non-negative")
	ErrInvalidMaxDelayTime = errors.New("invalid default max delay time: must be non-negative")
)
