// Package tracing wires OpenTelemetry into the API server.
//
// NewProvider builds the SDK tracer provider installed at startup, and
// Middleware opens one server span per HTTP request:
//
//	tp, err := tracing.NewProvider(cfg.Tracing)
//	if err != nil { ... }
//	defer tp.Shutdown(ctx)
//	handler = tracing.Middleware(handler)
package tracing
