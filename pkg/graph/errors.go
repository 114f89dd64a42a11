package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound is returned when an operation references a node that
	// is not present in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrCycleWouldForm is returned by AddEdge when inserting the edge
	// would create a cycle, violating the DAG invariant.
	ErrCycleWouldForm = errors.New("graph: edge would create a cycle")

	// ErrEdgeNotFound is returned by RemoveEdge when the given edge does
	// not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
