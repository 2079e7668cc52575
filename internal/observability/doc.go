// Package observability groups the logging, metrics and tracing infrastructure
// shared by the API server.
//
// Subpackages:
//   - logging: slog logger construction and request-scoped enrichment
//   - metrics: Prometheus HTTP, article and database pool metrics
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
