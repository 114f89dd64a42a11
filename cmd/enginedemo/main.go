// Command enginedemo assembles a small audio graph, drives it with a
// synthetic block clock in place of a real device callback, and exposes
// health and metrics endpoints over HTTP.
//
// Usage:
//
//	enginedemo [flags]
//
// Flags:
//
//	-addr string
//	    HTTP listen address (default ":8080")
//	-sample-rate float
//	    Sample rate in Hz (default 44100)
//	-block-size int
//	    Frames per block (default 512)
//	-graph string
//	    Example graph to run: "tone", "saw", or "feedback" (default "tone")
//	-shutdown-timeout duration
//	    Grace period for in-flight work during shutdown (default 10s)
//
// The command exposes:
//
//	GET  /health        - Aggregate health check
//	GET  /health/live    - Liveness probe
//	GET  /health/ready   - Readiness probe
//	GET  /metrics        - Prometheus metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arunprasath/audiograph/pkg/audio"
	"github.com/arunprasath/audiograph/pkg/config"
	"github.com/arunprasath/audiograph/pkg/engine"
	"github.com/arunprasath/audiograph/pkg/health"
	"github.com/arunprasath/audiograph/pkg/logging"
	"github.com/arunprasath/audiograph/pkg/node"
	"github.com/arunprasath/audiograph/pkg/observer"
	"github.com/arunprasath/audiograph/pkg/telemetry"
)

const serviceVersion = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	sampleRate := flag.Float64("sample-rate", 44100.0, "Sample rate in Hz")
	blockSize := flag.Int("block-size", 512, "Frames per block")
	graphKind := flag.String("graph", "tone", `Example graph to run: "tone", "saw", or "feedback"`)
	shutdownTimeout := flag.Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight work during shutdown")
	flag.Parse()

	logger := logging.New(logging.Config{Level: "info", Pretty: true})

	ctx := context.Background()
	telemetryProvider, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start telemetry: %v\n", err)
		os.Exit(1)
	}
	defer telemetryProvider.Shutdown(ctx)

	observers := observer.NewManagerWithObservers(
		observer.NewConsoleObserver(),
		telemetry.NewTelemetryObserver(telemetryProvider),
	)

	cfg := config.Production()
	cfg.SampleRate = float32(*sampleRate)
	cfg.MaxBlockSize = *blockSize

	g, err := engine.New(cfg, logger, observers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create audio graph: %v\n", err)
		os.Exit(1)
	}

	inputID, outputID, err := buildGraph(g, *graphKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build graph %q: %v\n", *graphKind, err)
		os.Exit(1)
	}

	g.Prepare(cfg.SampleRate, cfg.MaxBlockSize)
	if err := g.ValidateTopology(inputID, outputID); err != nil {
		fmt.Fprintf(os.Stderr, "invalid topology: %v\n", err)
		os.Exit(1)
	}

	if err := telemetryProvider.RegisterGraphSize(
		func() int64 { return g.NodeCount() },
		func() int64 { return g.EdgeCount() },
	); err != nil {
		logger.WithError(err).Warn("failed to register graph size callback")
	}
	if err := telemetryProvider.RegisterBlockCounter(g.BlocksProcessed); err != nil {
		logger.WithError(err).Warn("failed to register block counter callback")
	}

	checker := health.NewChecker("audiograph-engine", serviceVersion)
	checker.RegisterCheck("graph_prepared", func(ctx context.Context) error {
		if !g.Prepared() {
			return fmt.Errorf("audio graph has not completed Prepare")
		}
		return nil
	}, 2*time.Second, true)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", checker.HTTPHandler())
	mux.HandleFunc("/health/live", checker.LivenessHandler())
	mux.HandleFunc("/health/ready", checker.ReadinessHandler())
	mux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	stopClock := make(chan struct{})
	go runBlockClock(g, inputID, outputID, cfg, stopClock)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Infof("enginedemo listening on %s (graph=%s)", *addr, *graphKind)
		fmt.Printf("Health check:    http://localhost%s/health\n", *addr)
		fmt.Printf("Liveness probe:  http://localhost%s/health/live\n", *addr)
		fmt.Printf("Readiness probe: http://localhost%s/health/ready\n", *addr)
		fmt.Printf("Metrics:         http://localhost%s/metrics\n", *addr)
		fmt.Println("\nPress Ctrl+C to shutdown")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		close(stopClock)
		os.Exit(1)
	case sig := <-sigChan:
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Println("shutting down gracefully...")

		close(stopClock)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("enginedemo stopped")
	}
}

// buildGraph wires one of the example topologies and returns the input and
// output node IDs ValidateTopology and Process need.
func buildGraph(g *engine.AudioGraph, kind string) (inputID, outputID engine.NodeID, err error) {
	inputID, err = g.AddNode(node.NewInput())
	if err != nil {
		return 0, 0, err
	}
	outputID, err = g.AddNode(node.NewOutput())
	if err != nil {
		return 0, 0, err
	}

	switch kind {
	case "feedback":
		fbID, err := g.AddNode(node.NewFeedbackSine())
		if err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(inputID, fbID); err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(fbID, outputID); err != nil {
			return 0, 0, err
		}
	case "saw":
		sawID, err := g.AddNode(node.NewSaw(220.0))
		if err != nil {
			return 0, 0, err
		}
		gainID, err := g.AddNode(node.NewGain(0.3))
		if err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(inputID, sawID); err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(sawID, gainID); err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(gainID, outputID); err != nil {
			return 0, 0, err
		}
	default:
		sineID, err := g.AddNode(node.NewSine(440.0))
		if err != nil {
			return 0, 0, err
		}
		gainID, err := g.AddNode(node.NewGain(0.3))
		if err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(inputID, sineID); err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(sineID, gainID); err != nil {
			return 0, 0, err
		}
		if err := g.AddEdge(gainID, outputID); err != nil {
			return 0, 0, err
		}
	}

	return inputID, outputID, nil
}

// runBlockClock stands in for a real device callback: it calls Process on
// a fixed interval, once per block, with no logging in between ticks. The
// block duration is derived from sampleRate and MaxBlockSize so the clock
// approximates real-time playback.
func runBlockClock(g *engine.AudioGraph, inputID, outputID engine.NodeID, cfg *config.Config, stop <-chan struct{}) {
	blockDuration := time.Duration(float64(cfg.MaxBlockSize) / float64(cfg.SampleRate) * float64(time.Second))
	ticker := time.NewTicker(blockDuration)
	defer ticker.Stop()

	data := make([]float32, cfg.NumChannels*cfg.MaxBlockSize)
	buf, err := audio.NewBuffer(data, cfg.NumChannels, cfg.MaxBlockSize)
	if err != nil {
		return
	}

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = g.Process(buf, inputID, outputID)
		}
	}
}
