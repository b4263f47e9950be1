// Package metrics provides the centralized Prometheus metrics reference for
// the Pokédex client. All metrics are defined in their respective packages
// (client, fetch, throttle) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Pokédex client.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - pokeapi_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - pokeapi_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - pokeapi_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Acquisition Metrics (pkg/fetch):
//   - pokedex_lookups_total{outcome} (Counter): Identifier lookups by outcome (success, failure)
//   - pokedex_chunk_duration_seconds (Histogram): Duration of one fully settled chunk
//
// Pacing Metrics (pkg/throttle):
//   - pokedex_pacer_waits_total (Counter): Inter-chunk pacing pauses
//   - pokedex_pacer_wait_seconds_total (Counter): Total time spent pacing
//
// Example Prometheus Queries:
//
//   # Lookup failure rate
//   rate(pokedex_lookups_total{outcome="failure"}[5m]) /
//   rate(pokedex_lookups_total[5m])
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(pokeapi_request_duration_seconds_bucket[5m]))
//
//   # Upstream error classes
//   rate(pokeapi_errors_total[5m])
