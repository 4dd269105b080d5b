// Package monitoring provides Prometheus metrics for the parsing service.
//
// Metrics are registered on a private registry so tests can construct
// multiple collectors without collisions; the server exposes the registry
// through the standard /metrics endpoint.
package monitoring
