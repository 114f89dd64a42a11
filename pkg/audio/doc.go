// Package audio provides the non-owning, interleaved audio buffer view
// that every node in the graph reads from and writes into, plus the small
// set of free functions (Clear, Add, Copy) nodes use to combine buffers.
//
// # Layout
//
// A Buffer never owns memory. It is a channels*frames view over a caller-
// supplied []float32, interleaved per frame:
//
//	[f0c0, f0c1, ..., f0cN, f1c0, f1c1, ..., f1cN, ...]
//
// Constructing a Buffer validates that the backing slice is exactly
// channels*frames long; after that, every method on Buffer is allocation-
// free, which is what lets AudioGraph.Process hand buffer views to nodes
// from the real-time thread without ever calling into the allocator.
package audio
