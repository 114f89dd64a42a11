// Package engine provides AudioGraph, a real-time-safe directed acyclic
// graph of audio nodes.
//
// Topology is owned by the control thread: AddNode, RemoveNode, AddEdge,
// RemoveEdge, Prepare, and Reset may allocate, lock, log, and emit
// observer events. Process runs on the audio thread and must not: it
// walks a cached reverse-topological order, sums predecessor outputs
// into pre-allocated scratch buffers, and never calls into logging,
// the observer bus, or the telemetry package. The only audio-thread
// side effect beyond the caller's buffer is an atomic increment of a
// processed-block counter, read by pkg/telemetry through a pull-based
// callback rather than a direct call from Process.
package engine
