// Package prometheus renders client metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [pharmaclient.Client] and exposes
// an [http.Handler] that renders all counters and the latency
// histogram. Counter names are prefixed pharmaclient_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate client state.
package prometheus
