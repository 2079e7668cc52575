// Package circuitbreaker stops calling a dependency that keeps failing.
// It wraps github.com/sony/gobreaker and publishes breaker state as metrics.
package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"article-hub/internal/observability/metrics"
	"article-hub/internal/resilience/retry"
)

// Config tunes one breaker.
type Config struct {
	// Name labels logs and the circuit_breaker_state metric.
	Name string
	// MaxRequests is how many probes pass while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts. Zero keeps them until a state change.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// FailureThreshold is the failure ratio, in (0, 1], that trips the breaker.
	FailureThreshold float64
	// MinRequests is the sample size required before the ratio is considered.
	MinRequests uint32
}

// DrafterConfig is the breaker for a remote draft provider ("openai", "claude").
// It trips at a 60% failure ratio over at least five calls and probes again after 30s.
func DrafterConfig(provider string) Config {
	return Config{
		Name:             provider + "-drafter",
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// CircuitBreaker guards calls to one dependency.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New creates a breaker and publishes its initial closed state.
// Calls that fail only because the caller's context was canceled, or that the
// dependency rejected with a client error (4xx other than 408 and 429), are
// not counted against the dependency.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.RecordCircuitState(name, stateValue(to), to.String(), true)
		},
	}

	metrics.RecordCircuitState(cfg.Name, stateValue(gobreaker.StateClosed), gobreaker.StateClosed.String(), false)
	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the breaker.
// While open it returns gobreaker.ErrOpenState without calling fn; while
// half-open and saturated it returns gobreaker.ErrTooManyRequests.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

// Call is Execute for a typed result.
func Call[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	res, err := cb.breaker.Execute(func() (interface{}, error) { return fn() })
	if err != nil {
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("circuit %s: unexpected result type %T", cb.name, res)
	}
	return v, nil
}

// Rejected reports whether err came from the breaker itself rather than the dependency.
func Rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name returns the breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}

// clientError reports an upstream answer caused by the request itself,
// such as an unknown model id. The dependency is healthy when it says so.
func clientError(err error) bool {
	var se *retry.StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status >= 400 && se.Status < 500 && !retry.Temporary(se)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
