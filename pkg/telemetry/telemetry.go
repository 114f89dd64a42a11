package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Service name for telemetry
	serviceName = "audiograph-engine"

	// Metric names
	metricGraphNodes           = "graph.nodes"
	metricGraphEdges           = "graph.edges"
	metricGraphMutations       = "graph.mutations.total"
	metricGraphCycleRejections = "graph.cycle_rejections.total"
	metricGraphPrepareDuration = "graph.prepare.duration"
	metricEngineBlocksProcessed = "engine.blocks_processed"
)

// Provider manages OpenTelemetry setup and provides access to tracers and
// meters for the audio graph engine.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	mutationsTotal  metric.Int64Counter
	cycleRejections metric.Int64Counter
	prepareDuration metric.Float64Histogram

	nodesGauge      metric.Int64ObservableGauge
	edgesGauge      metric.Int64ObservableGauge
	blocksProcessed metric.Int64ObservableCounter

	mu sync.RWMutex
}

// Config holds telemetry configuration
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	EnableTracing  bool
	EnableMetrics  bool
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with a Prometheus metrics
// exporter, following the control-thread / audio-thread split: everything
// here is called from the control thread (or the meter's own callback
// goroutine), never from Process.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	return p.createMetricInstruments()
}

func (p *Provider) initTracing() {
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

func (p *Provider) createMetricInstruments() error {
	var err error

	p.mutationsTotal, err = p.meter.Int64Counter(
		metricGraphMutations,
		metric.WithDescription("Total number of control-thread topology mutations"),
	)
	if err != nil {
		return err
	}

	p.cycleRejections, err = p.meter.Int64Counter(
		metricGraphCycleRejections,
		metric.WithDescription("Total number of AddEdge calls rejected for forming a cycle"),
	)
	if err != nil {
		return err
	}

	p.prepareDuration, err = p.meter.Float64Histogram(
		metricGraphPrepareDuration,
		metric.WithDescription("Time spent in AudioGraph.Prepare"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.nodesGauge, err = p.meter.Int64ObservableGauge(
		metricGraphNodes,
		metric.WithDescription("Current number of nodes in the graph"),
	)
	if err != nil {
		return err
	}

	p.edgesGauge, err = p.meter.Int64ObservableGauge(
		metricGraphEdges,
		metric.WithDescription("Current number of edges in the graph"),
	)
	if err != nil {
		return err
	}

	p.blocksProcessed, err = p.meter.Int64ObservableCounter(
		metricEngineBlocksProcessed,
		metric.WithDescription("Total number of blocks processed by the real-time thread"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordMutation records a topology mutation (node/edge added or removed).
func (p *Provider) RecordMutation(ctx context.Context, kind string) {
	if p.meter == nil {
		return
	}
	p.mutationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordCycleRejection records an AddEdge call rejected for forming a cycle.
func (p *Provider) RecordCycleRejection(ctx context.Context) {
	if p.meter == nil {
		return
	}
	p.cycleRejections.Add(ctx, 1)
}

// RecordPrepareDuration records how long an AudioGraph.Prepare call took.
func (p *Provider) RecordPrepareDuration(ctx context.Context, duration time.Duration) {
	if p.meter == nil {
		return
	}
	p.prepareDuration.Record(ctx, float64(duration.Microseconds())/1000.0)
}

// RegisterGraphSize registers a pull-based callback reporting the current
// node and edge counts. The callback is invoked by the meter on its own
// goroutine whenever metrics are scraped, never from the audio thread.
func (p *Provider) RegisterGraphSize(nodeCount, edgeCount func() int64) error {
	if p.meter == nil {
		return nil
	}
	_, err := p.meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(p.nodesGauge, nodeCount())
			o.ObserveInt64(p.edgesGauge, edgeCount())
			return nil
		},
		p.nodesGauge, p.edgesGauge,
	)
	return err
}

// RegisterBlockCounter registers a pull-based callback reporting the
// engine's cumulative processed-block count. This is how
// AudioGraph.Process's atomic.Uint64 block counter reaches Prometheus
// without the audio thread ever calling into the metrics library.
func (p *Provider) RegisterBlockCounter(count func() uint64) error {
	if p.meter == nil {
		return nil
	}
	_, err := p.meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(p.blocksProcessed, int64(count()))
			return nil
		},
		p.blocksProcessed,
	)
	return err
}

// Shutdown gracefully shuts down the telemetry provider
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}

	return nil
}
