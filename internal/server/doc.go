// Package server exposes the recipe parsing engine over HTTP.
//
// Routes:
//   - POST /api/parse: run the extraction cascade over a submitted HTML
//     document and return the full result, including diagnostics
//   - GET /health: liveness probe
//   - GET /metrics: Prometheus metrics
//
// The engine never fetches pages itself; callers submit the HTML they
// already retrieved, with the source URL attached only as diagnostic
// context.
package server
