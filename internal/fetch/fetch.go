package fetch

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/glennawatson/GitReleaseNoteGenerator/internal/github"
)

const (
	maxRetries = 3
	baseDelay  = 2 * time.Second
	maxDelay   = 60 * time.Second
)

// Do runs a remote call with up to maxRetries retries. Transient failures
// (rate limits, 5xx responses, transport errors, timeouts) back off
// exponentially from baseDelay with jitter; a rate limit instead waits until
// its reported reset. Any other error returns on the first attempt.
func Do[T any](ctx context.Context, log logrus.FieldLogger, name string, op func() (T, error)) (T, error) {
	return do(ctx, log, name, op, baseDelay)
}

func do[T any](ctx context.Context, log logrus.FieldLogger, name string, op func() (T, error), base time.Duration) (T, error) {
	var result T
	policy := newRetryPolicy(base)

	attempt := 0
	operation := func() error {
		attempt++
		value, err := op()
		if err != nil {
			policy.lastErr = err
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = value
		return nil
	}

	notify := func(err error, delay time.Duration) {
		log.WithFields(logrus.Fields{
			"call":         name,
			"attempt":      attempt,
			"max_attempts": maxRetries + 1,
			"delay":        delay,
			"error":        err,
		}).Warn("remote call failed; retrying")
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// retryPolicy layers the rate-limit reset delay over an exponential backoff:
// when the last failure was a rate limit with a future reset, the wait is
// reset-to-now plus one second instead of the generic interval.
type retryPolicy struct {
	exp     *backoff.ExponentialBackOff
	lastErr error
}

func newRetryPolicy(base time.Duration) *retryPolicy {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = base
	exp.Multiplier = 2
	exp.MaxInterval = maxDelay
	exp.MaxElapsedTime = 0
	return &retryPolicy{exp: exp}
}

func (p *retryPolicy) NextBackOff() time.Duration {
	var rateLimited *github.RateLimitError
	if errors.As(p.lastErr, &rateLimited) {
		if delay := time.Until(rateLimited.Reset) + time.Second; delay > 0 {
			return delay
		}
	}
	return p.exp.NextBackOff()
}

func (p *retryPolicy) Reset() {
	p.exp.Reset()
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var rateLimited *github.RateLimitError
	if errors.As(err, &rateLimited) {
		return true
	}

	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	var notFound *github.NotFoundError
	if errors.As(err, &notFound) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
