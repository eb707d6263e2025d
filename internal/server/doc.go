// Package server exposes a gradebook store over HTTP as a small JSON API.
//
// Routes are registered on a gorilla/mux router. Every store call runs under
// a single server-owned mutex, so the store itself needs no locking, and is
// wrapped in an OpenTelemetry span. Request counts and latencies are exported
// in Prometheus format on /metrics.
package server
