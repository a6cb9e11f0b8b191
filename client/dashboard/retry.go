package dashboard

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultRetryBackoff = 200 * time.Millisecond

// RetryPolicy bounds how often a failed request is attempted. The zero value
// makes a single attempt.
type RetryPolicy struct {
	MaxAttempts uint64
	Backoff     time.Duration
}

func (p RetryPolicy) backoff() retry.Backoff {
	wait := p.Backoff
	if wait <= 0 {
		wait = defaultRetryBackoff
	}

	retries := uint64(0)
	if p.MaxAttempts > 1 {
		retries = p.MaxAttempts - 1
	}

	return retry.WithMaxRetries(retries, retry.NewExponential(wait))
}

// do runs fn under the policy. fn marks a failure worth repeating with
// retry.RetryableError.
func (p RetryPolicy) do(ctx context.Context, fn retry.RetryFunc) error {
	return retry.Do(ctx, p.backoff(), fn) //nolint:wrapcheck
}
