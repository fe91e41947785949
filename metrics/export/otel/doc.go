// Package otel provides OpenTelemetry metric bindings for client
// counters and histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for
// each counter and Int64ObservableGauge per histogram bucket. A single
// callback reads [pharmaclient.Client.MetricsSnapshot] on each
// collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate client state.
package otel
