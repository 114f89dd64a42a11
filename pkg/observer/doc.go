// Package observer provides an event-driven observer pattern for
// AudioGraph's control-thread mutations.
//
// # Overview
//
// Observers let a library consumer track topology changes (nodes and
// edges added, removed, or rejected by AddEdge) and lifecycle
// events (Prepare, Reset) without the engine depending on any particular
// logging or metrics backend. The real-time Process path never emits an
// event: constructing one allocates, and notification happens over a
// goroutine-per-observer fan-out that the audio thread cannot use.
//
// # Basic usage
//
//	mgr := observer.NewManager()
//	mgr.Register(observer.NewConsoleObserver())
//	mgr.Notify(ctx, observer.Event{Type: observer.EventNodeAdded, NodeID: "gain-1"})
//
// # Manager
//
// Manager fans a single Notify call out to every registered observer in
// its own goroutine, recovering any panic so one broken observer can
// never affect another or the caller.
package observer
