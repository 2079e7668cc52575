// Package retry re-runs calls to draft providers that failed for a transient
// reason, waiting an exponentially growing, jittered delay between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Config is a retry policy.
type Config struct {
	// MaxAttempts counts every call, the first one included. Values below 1 mean 1.
	MaxAttempts int
	// InitialDelay is the wait before the second attempt.
	InitialDelay time.Duration
	// MaxDelay caps the wait before jitter is added.
	MaxDelay time.Duration
	// Multiplier grows the wait after each failed attempt.
	Multiplier float64
	// JitterFraction adds up to this fraction of the wait at random, in [0, 1].
	JitterFraction float64
}

// DrafterConfig is the policy for remote draft providers. Completions are
// billed per call, so it gives up after three attempts.
func DrafterConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   2 * time.Second,
		MaxDelay:       10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// Backoff returns the wait after the n-th failed attempt (1-based), before jitter.
func (c Config) Backoff(n int) time.Duration {
	if n < 1 || c.InitialDelay <= 0 {
		return 0
	}
	mult := c.Multiplier
	if mult < 1 {
		mult = 1
	}
	d := float64(c.InitialDelay)
	for i := 1; i < n; i++ {
		d *= mult
		if c.MaxDelay > 0 && d >= float64(c.MaxDelay) {
			return c.MaxDelay
		}
	}
	if c.MaxDelay > 0 && time.Duration(d) > c.MaxDelay {
		return c.MaxDelay
	}
	return time.Duration(d)
}

func (c Config) jittered(d time.Duration) time.Duration {
	f := min(c.JitterFraction, 1.0)
	if f <= 0 || d <= 0 {
		return d
	}
	// #nosec G404 -- jitter does not need cryptographic randomness.
	return d + time.Duration(rand.Float64()*f*float64(d))
}

// Do calls fn until it succeeds, fails with an error Temporary rejects, runs
// out of attempts or ctx ends. fn receives ctx unchanged.
// When attempts run out the last error is returned wrapped.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	attempts := max(cfg.MaxAttempts, 1)

	var err error
	for n := 1; ; n++ {
		if err = fn(ctx); err == nil {
			if n > 1 {
				slog.InfoContext(ctx, "call succeeded after retry", slog.Int("attempt", n))
			}
			return nil
		}
		if !Temporary(err) {
			return err
		}
		if n == attempts {
			break
		}

		wait := cfg.jittered(cfg.Backoff(n))
		slog.WarnContext(ctx, "call failed, retrying",
			slog.Int("attempt", n),
			slog.Int("max_attempts", attempts),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted after %d attempts: %w", n, errors.Join(ctx.Err(), err))
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
}

// StatusError is an upstream HTTP failure reported by a provider SDK.
type StatusError struct {
	Provider string
	Status   int
	Err      error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s api returned %d: %v", e.Provider, e.Status, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Temporary reports whether err is worth another attempt: timeouts, refused or
// reset connections, truncated responses, and 408, 429 or 5xx answers.
// Cancellation and deadline errors are never temporary.
func Temporary(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == http.StatusRequestTimeout ||
			se.Status == http.StatusTooManyRequests ||
			se.Status >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH)
}
