// Package logging provides structured logging for the audio graph engine,
// built on Go's slog package.
//
// # Overview
//
// Logger wraps *slog.Logger with chainable WithX methods that attach
// contextual fields (graph_id, node_id, node_kind) without mutating the
// original logger, so a control-thread caller can derive a scoped logger
// per node without affecting its peers.
//
// # Basic usage
//
//	logger := logging.New(logging.DefaultConfig())
//	logger.WithGraphID(id).WithNodeID("gain-1").WithNodeKind("gain").Info("node added")
//
// # Context propagation
//
//	ctx = logger.WithContext(ctx)
//	logging.FromContext(ctx).Info("request handled")
//
// # Where it's called from
//
// AudioGraph's control-thread methods (AddNode, AddEdge, Prepare, Reset)
// log through this package. Process, the real-time entry point, never
// does: logging allocates and can block on I/O, which the audio thread
// cannot tolerate.
package logging
