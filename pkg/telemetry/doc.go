// Package telemetry provides OpenTelemetry integration for the audio graph
// engine: a Prometheus metrics exporter, short-lived trace spans for
// control-thread topology events, and pull-based observable instruments
// for state the audio thread owns (graph size, blocks processed) so that
// reading it never requires a call into the metrics library from
// Process.
package telemetry
