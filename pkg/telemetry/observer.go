package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arunprasath/audiograph/pkg/engine"
	"github.com/arunprasath/audiograph/pkg/observer"
)

// TelemetryObserver implements observer.Observer, bridging AudioGraph's
// control-thread topology events into OpenTelemetry counters, a
// histogram, and short-lived trace spans. It never runs on the audio
// thread: AudioGraph.Process never emits an observer.Event.
type TelemetryObserver struct {
	provider *Provider
}

// NewTelemetryObserver creates a new telemetry observer backed by provider.
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{provider: provider}
}

// OnEvent implements observer.Observer.
func (o *TelemetryObserver) OnEvent(ctx context.Context, event observer.Event) {
	switch event.Type {
	case observer.EventNodeAdded:
		o.recordSpan(ctx, "node.added", nil,
			attribute.String("node.id", event.NodeID),
			attribute.String("node.kind", event.NodeKind))
		o.provider.RecordMutation(ctx, "node_added")
	case observer.EventNodeRemoved:
		o.recordSpan(ctx, "node.removed", nil,
			attribute.String("node.id", event.NodeID))
		o.provider.RecordMutation(ctx, "node_removed")
	case observer.EventEdgeAdded:
		o.recordSpan(ctx, "edge.added", nil,
			attribute.String("from_node.id", event.FromNodeID),
			attribute.String("to_node.id", event.ToNodeID))
		o.provider.RecordMutation(ctx, "edge_added")
	case observer.EventEdgeRemoved:
		o.recordSpan(ctx, "edge.removed", nil,
			attribute.String("from_node.id", event.FromNodeID),
			attribute.String("to_node.id", event.ToNodeID))
		o.provider.RecordMutation(ctx, "edge_removed")
	case observer.EventEdgeRejected:
		o.recordSpan(ctx, "edge.rejected", event.Error,
			attribute.String("from_node.id", event.FromNodeID),
			attribute.String("to_node.id", event.ToNodeID))
		if errors.Is(event.Error, engine.ErrCycleWouldForm) {
			o.provider.RecordCycleRejection(ctx)
		}
	case observer.EventPrepared:
		o.recordSpan(ctx, "graph.prepared", nil,
			attribute.Float64("sample_rate", float64(event.SampleRate)),
			attribute.Int("max_frames", event.MaxFrames))
		if d, ok := event.Metadata["duration"].(time.Duration); ok {
			o.provider.RecordPrepareDuration(ctx, d)
		}
	case observer.EventReset:
		o.recordSpan(ctx, "graph.reset", nil)
	}
}

// recordSpan opens and immediately closes a span for a single-shot
// control-thread event, recording err on it if non-nil.
func (o *TelemetryObserver) recordSpan(ctx context.Context, name string, err error, attrs ...attribute.KeyValue) {
	tracer := o.provider.Tracer()
	if tracer == nil {
		return
	}
	_, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
