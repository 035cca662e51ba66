package domain

import (
	"context"
	"log/slog"
	"time"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	// DefaultMaxAttempts is the number of tries Retry makes by default.
	DefaultMaxAttempts = 5
	// DefaultBaseDelay is the delay after the first failed attempt.
	DefaultBaseDelay = time.Second
	// FinalCooldown is the minimum wait before the last attempt.
	FinalCooldown = 30 * time.Second
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryConfig configures Retry.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       SleepFunc
}

// RetryOption customizes a RetryConfig.
type RetryOption func(*RetryConfig)

// WithMaxAttempts sets the total number of attempts.
func WithMaxAttempts(attempts int) RetryOption {
	return func(c *RetryConfig) {
		if attempts > 0 {
			c.MaxAttempts = attempts
		}
	}
}

// WithBaseDelay sets the delay after the first failed attempt.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(c *RetryConfig) {
		if delay > 0 {
			c.BaseDelay = delay
		}
	}
}

// WithSleep replaces the sleeper, mainly for tests.
func WithSleep(sleep SleepFunc) RetryOption {
	return func(c *RetryConfig) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}

func defaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		Sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryDelay returns the wait after the given failed attempt (1-based).
// The wait before the final attempt is never shorter than FinalCooldown.
func RetryDelay(attempt, maxAttempts int, base time.Duration) time.Duration {
	delay := base << (attempt - 1)

	if attempt == maxAttempts-1 && delay < FinalCooldown {
		delay = FinalCooldown
	}

	return delay
}

// Retry runs op until it succeeds, fails with a non-retriable error, or
// exhausts its attempts. It returns the last error on failure.
func Retry[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...RetryOption) (T, error) {
	cfg := defaultRetryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		zero    T
		lastErr error
	)

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		value, err := op(ctx)
		if err == nil {
			return value, nil
		}

		lastErr = err

		if m.IsNonRetriable(err) {
			slog.Error("Attempt failed with non-retriable error", "attempt", attempt, "error", err)
			return zero, err
		}

		if attempt == cfg.MaxAttempts {
			slog.Error("Final attempt failed", "attempt", attempt, "max_attempts", cfg.MaxAttempts, "error", err)
			break
		}

		delay := RetryDelay(attempt, cfg.MaxAttempts, cfg.BaseDelay)
		slog.Warn("Attempt failed, retrying", "attempt", attempt, "max_attempts", cfg.MaxAttempts, "delay", delay, "error", err)

		if sleepErr := cfg.Sleep(ctx, delay); sleepErr != nil {
			return zero, sleepErr
		}
	}

	return zero, lastErr
}
