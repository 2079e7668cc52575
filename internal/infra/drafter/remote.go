package drafter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"article-hub/internal/domain/entity"
	"article-hub/internal/resilience/circuitbreaker"
	"article-hub/internal/resilience/retry"
	"article-hub/internal/usecase/article"
	"article-hub/internal/utils/text"
)

var (
	errEmptyCompletion = errors.New("api returned an empty completion")
	errCircuitOpen     = errors.New("api unavailable: circuit breaker open")
)

// Option customizes a remote drafter.
type Option func(*remote)

// WithRetryConfig overrides the retry policy.
func WithRetryConfig(cfg retry.Config) Option {
	return func(r *remote) { r.retryConfig = cfg }
}

// WithCircuitBreaker overrides the circuit breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(r *remote) { r.circuitBreaker = cb }
}

// WithMetrics overrides the metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(r *remote) { r.metrics = m }
}

// remote holds the reliability plumbing shared by the API-backed drafters.
type remote struct {
	provider       string
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	timeout        time.Duration
	metrics        MetricsRecorder
}

func newRemote(provider string, timeout time.Duration, opts []Option) remote {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	r := remote{
		provider:       provider,
		circuitBreaker: circuitbreaker.New(circuitbreaker.DrafterConfig(provider)),
		retryConfig:    retry.DrafterConfig(),
		timeout:        timeout,
		metrics:        NewPrometheusMetrics(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// run executes call under a per-call timeout, the retry policy and the circuit breaker,
// and turns the completion text into a draft. Every failure is a *entity.ProviderError.
func (r *remote) run(ctx context.Context, call func(ctx context.Context) (string, error)) (*article.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	var completion string

	err := retry.Do(ctx, r.retryConfig, func(ctx context.Context) error {
		res, err := circuitbreaker.Call(r.circuitBreaker, func() (string, error) {
			return call(ctx)
		})
		if circuitbreaker.Rejected(err) {
			slog.WarnContext(ctx, "draft api circuit breaker open, request rejected",
				slog.String("provider", r.provider),
				slog.String("state", r.circuitBreaker.State().String()))
			return errCircuitOpen
		}
		completion = res
		return err
	})
	duration := time.Since(start)

	switch {
	case errors.Is(err, errCircuitOpen):
		r.metrics.RecordDraft(r.provider, outcomeCircuitOpen, duration)
	case err != nil:
		r.metrics.RecordDraft(r.provider, outcomeError, duration)
	case strings.TrimSpace(completion) == "":
		r.metrics.RecordDraft(r.provider, outcomeEmpty, duration)
		err = errEmptyCompletion
	default:
		r.metrics.RecordDraft(r.provider, outcomeSuccess, duration)
	}
	if err != nil {
		slog.ErrorContext(ctx, "draft generation failed",
			slog.String("provider", r.provider),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, &entity.ProviderError{Provider: r.provider, Err: err}
	}

	r.metrics.RecordLength(r.provider, text.CountRunes(completion))
	slog.InfoContext(ctx, "draft generated",
		slog.String("provider", r.provider),
		slog.Int("length", text.CountRunes(completion)),
		slog.Duration("duration", duration))

	return draftFromCompletion(completion), nil
}

// draftFromCompletion uses the whole completion as content and its first line as title.
// A single-line completion therefore becomes both title and content.
func draftFromCompletion(completion string) *article.Draft {
	completion = strings.TrimSpace(completion)
	title := text.FirstLine(completion)
	if title == "" {
		title = completion
	}
	return &article.Draft{
		Title:   text.Truncate(title, maxTitleRunes),
		Content: completion,
	}
}

// statusError tags an SDK error with the HTTP status it carried, if any, so
// retry.Temporary can classify it.
func statusError(provider string, status int, err error) error {
	if status == 0 {
		return fmt.Errorf("%s api: %w", provider, err)
	}
	return &retry.StatusError{Provider: provider, Status: status, Err: err}
}

// Health reports the breaker state. A remote drafter only exists with an API key.
func (r *remote) Health() article.ProviderHealth {
	h := article.ProviderHealth{Provider: r.provider, Configured: true}
	if r.circuitBreaker.IsOpen() {
		h.CircuitOpen = true
		h.Message = "circuit breaker open"
	}
	return h
}
