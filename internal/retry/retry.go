// Package retry wraps outbound calls with bounded exponential backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 800 * time.Millisecond
)

// Do runs op until it succeeds or the attempt budget is spent: an initial
// call plus two retries, delays starting at 800ms and doubling. The last
// error is returned. Cancelling ctx stops further attempts.
func Do(ctx context.Context, op func() error) error {
	return DoWith(ctx, op, defaultMaxAttempts, defaultBaseDelay)
}

// DoWith is Do with explicit attempt count and base delay.
func DoWith(ctx context.Context, op func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = baseDelay << (maxAttempts - 1)

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxAttempts-1)), ctx)
	return backoff.Retry(op, policy)
}
