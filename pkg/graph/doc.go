// Package graph provides a generic directed acyclic graph used to model
// audio node topology: which nodes feed which other nodes.
//
// # Overview
//
// The graph package implements the single algorithm the audio engine leans
// on for correct block processing: a topological ordering of nodes, and its
// reverse, the order in which nodes must be processed so that every node
// sees its predecessors' output from the same block.
//
// # Key Algorithms
//
// Topological Sort:
//   - Classical DFS with three marks (unseen, in-progress, done)
//   - Does not itself check for cycles: AddEdge keeps the graph acyclic
//   - Deterministic: roots are walked in node-insertion order, not map order
//
// Cycle Detection:
//   - Before an edge is inserted, a DFS from the new edge's target asks
//     whether the new edge's source is reachable; if so the edge would
//     close a cycle and is rejected
//
// # Graph Representation
//
//   - Nodes are keys of a generic comparable type K (the audio engine uses
//     a monotonically increasing NodeID)
//   - Edges are directed: Source produces data that Target consumes
//   - AddNode/AddEdge/RemoveNode/RemoveEdge run on the control thread
//   - TopologicalOrder/ReverseTopologicalOrder/PredecessorsOf are read-only,
//     allocation-free, and safe to call from a real-time thread once the
//     graph's shape has stopped changing
//
// # Basic Usage
//
//	g := graph.New[int]()
//	g.AddNode(1)
//	g.AddNode(2)
//	if err := g.AddEdge(1, 2); err != nil {
//	    // ErrNodeNotFound or ErrCycleWouldForm
//	}
//	order := g.ReverseTopologicalOrder() // processing order: [1, 2]
//
// # Thread Safety
//
// DirectedGraph is not internally synchronized. The caller is expected to
// confine mutation to a single control thread and to ensure no concurrent
// reader observes a graph mid-mutation, exactly as the audio engine's own
// concurrency contract requires.
package graph
