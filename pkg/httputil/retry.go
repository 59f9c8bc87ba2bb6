package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks an error as worth retrying. Wrap transient failures
// (network timeouts, 5xx responses, rate limits) with this type so that
// [Retry] attempts the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times with exponential backoff. Only
// errors wrapped in [RetryableError] trigger another attempt; anything else
// is returned immediately. The delay doubles after each failure. Returns the
// last error when every attempt fails, or ctx.Err() on cancellation.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff is [Retry] with the defaults used across the codebase:
// 3 attempts starting at a 1 second delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
