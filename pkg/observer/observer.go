// Package observer provides the Observer pattern implementation for audio
// graph topology monitoring. This allows library consumers to track and
// react to control-thread mutations without coupling to AudioGraph's
// internals.
package observer

import (
	"context"
	"time"
)

// EventType represents the kind of topology event being reported. All
// events originate from the control thread; the real-time Process path
// never emits one.
type EventType string

const (
	EventNodeAdded    EventType = "node_added"
	EventNodeRemoved  EventType = "node_removed"
	EventEdgeAdded    EventType = "edge_added"
	EventEdgeRejected EventType = "edge_rejected"
	EventEdgeRemoved  EventType = "edge_removed"
	EventPrepared     EventType = "prepared"
	EventReset        EventType = "reset"
)

// Event represents a topology event with all relevant metadata.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	GraphID string `json:"graph_id,omitempty"`

	// Populated for node events.
	NodeID   string `json:"node_id,omitempty"`
	NodeKind string `json:"node_kind,omitempty"`

	// Populated for edge events.
	FromNodeID string `json:"from_node_id,omitempty"`
	ToNodeID   string `json:"to_node_id,omitempty"`

	// Populated for Prepared events.
	SampleRate float32 `json:"sample_rate,omitempty"`
	MaxFrames  int     `json:"max_frames,omitempty"`

	// Error is set on EventEdgeRejected (e.g. engine.ErrCycleWouldForm).
	Error error `json:"error,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Observer defines the interface for audio graph topology observers.
// Observers receive notifications about control-thread mutations.
type Observer interface {
	// OnEvent is called when a topology event occurs. The context can be
	// used for cancellation and passing request-scoped values.
	OnEvent(ctx context.Context, event Event)
}

// Logger defines the interface for custom logging. This allows library
// consumers to integrate with their own logging systems.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
