// Package config provides configuration management for the audio graph
// engine.
//
// # Overview
//
// Config centralizes sample rate, block size, channel count, and topology
// limits in one validated, cloneable struct, following the same pattern
// as the rest of this module: a single source of truth constructed via a
// named preset and checked with Validate before use.
//
// # Presets
//
//   - Default: production-shaped defaults (44.1kHz, 2048-frame blocks, degrade-on-violation)
//   - Development: Default with Strict enabled, so a violated real-time precondition panics
//   - Production: Default with Strict disabled, so a live audio callback never panics
//   - Testing: small sample rate and block size for fast, deterministic unit tests
//
// # Basic usage
//
//	cfg := config.Default()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	g, err := engine.New(cfg, nil, nil)
//	if err != nil {
//	    return err
//	}
package config
