package engine

import "errors"

// Sentinel errors for AudioGraph operations.
var (
	// ErrNodeNotFound is returned when an operation references a NodeID
	// that is not present in the graph.
	ErrNodeNotFound = errors.New("engine: node not found")

	// ErrCycleWouldForm is returned by AddEdge when inserting the edge
	// would create a cycle.
	ErrCycleWouldForm = errors.New("engine: edge would create a cycle")

	// ErrEdgeNotFound is returned by RemoveEdge when the given edge does
	// not exist.
	ErrEdgeNotFound = errors.New("engine: edge not found")

	// ErrMaxNodesExceeded is returned by AddNode once Config.MaxNodes
	// nodes are already present.
	ErrMaxNodesExceeded = errors.New("engine: max nodes exceeded")

	// ErrMaxEdgesExceeded is returned by AddEdge once Config.MaxEdges
	// edges are already present.
	ErrMaxEdgesExceeded = errors.New("engine: max edges exceeded")

	// ErrPreconditionViolated is returned (Strict == false) or panicked
	// with (Strict == true) by Process when called with a channel count
	// other than Config.NumChannels, a frame count over the max block
	// size last passed to Prepare, or an inputID/outputID that does not
	// resolve to a node in the graph.
	ErrPreconditionViolated = errors.New("engine: real-time precondition violated")

	// ErrInvalidConfig is returned by New when the supplied Config fails
	// Validate.
	ErrInvalidConfig = errors.New("engine: invalid config")

	// ErrInputHasPredecessors is returned by ValidateTopology when the
	// designated input node has inbound edges: AudioGraph.Process
	// overwrites the input node's summed predecessor output with the
	// external input buffer, silently discarding whatever those
	// predecessors produced, which is almost certainly not what an
	// integrator wiring up such a topology intended.
	ErrInputHasPredecessors = errors.New("engine: input node has inbound edges")
)
