package telemetry

import (
	"context"
	"testing"
	"time"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "default config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "custom config",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  true,
			},
			wantErr: false,
		},
		{
			name: "metrics only",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  false,
				EnableMetrics:  true,
			},
			wantErr: false,
		},
		{
			name: "tracing only",
			config: Config{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Environment:    "test",
				EnableTracing:  true,
				EnableMetrics:  false,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(ctx, tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if err == nil {
				if provider == nil {
					t.Error("NewProvider() returned nil provider")
					return
				}

				if tt.config.EnableTracing && provider.Tracer() == nil {
					t.Error("Tracer() returned nil when tracing is enabled")
				}

				if tt.config.EnableMetrics && provider.Meter() == nil {
					t.Error("Meter() returned nil when metrics are enabled")
				}

				if err := provider.Shutdown(ctx); err != nil {
					t.Errorf("Shutdown() error = %v", err)
				}
			}
		})
	}
}

func TestRecordMutation(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	for _, kind := range []string{"node_added", "node_removed", "edge_added", "edge_removed"} {
		provider.RecordMutation(ctx, kind)
	}
}

func TestRecordCycleRejection(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	provider.RecordCycleRejection(ctx)
}

func TestRecordPrepareDuration(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	provider.RecordPrepareDuration(ctx, 5*time.Millisecond)
}

func TestRegisterGraphSize(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	if err := provider.RegisterGraphSize(
		func() int64 { return 3 },
		func() int64 { return 2 },
	); err != nil {
		t.Errorf("RegisterGraphSize() error = %v", err)
	}
}

func TestRegisterBlockCounter(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	if err := provider.RegisterBlockCounter(func() uint64 { return 42 }); err != nil {
		t.Errorf("RegisterBlockCounter() error = %v", err)
	}
}

func TestShutdown(t *testing.T) {
	ctx := context.Background()
	config := DefaultConfig()

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}

	// Second shutdown should not panic even if the underlying SDK errors.
	_ = provider.Shutdown(ctx)
}

func TestProviderWithNilMetrics(t *testing.T) {
	ctx := context.Background()

	config := Config{
		ServiceName:    "test",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		EnableTracing:  true,
		EnableMetrics:  false,
	}

	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(ctx)

	// These should not panic even with nil metrics.
	provider.RecordMutation(ctx, "node_added")
	provider.RecordCycleRejection(ctx)
	provider.RecordPrepareDuration(ctx, time.Millisecond)
}
