// Package metrics centralizes the Prometheus metrics of the API server.
//
// All metrics are registered with the default registry and exposed via /metrics:
//   - HTTP request metrics (count, duration, sizes, in-flight)
//   - article write operations by outcome
//   - database query duration and connection pool gauges
//   - circuit breaker state and transitions
//
// Example usage:
//
//	start := time.Now()
//	a, err := repo.Create(ctx, in)
//	metrics.RecordOperationDuration("create", time.Since(start))
//	metrics.RecordArticleOperation("create", "success")
package metrics
