// Package retry runs an operation under a fixed attempt budget where each
// attempt gets its own escalating timeout. This models remote-extraction
// retries: the constraint is a per-attempt deadline with cancellation of the
// in-flight call, not a delay between attempts.
package retry

import (
	"context"
	"errors"
	"time"
)

// Config controls the attempt schedule. Attempt i (0-based) runs under a
// context deadline of Timeout + i*TimeoutStep.
type Config struct {
	Attempts    int
	Timeout     time.Duration
	TimeoutStep time.Duration
}

// Do invokes op until it succeeds or the attempts are exhausted, returning
// the last error. The parent context aborts the whole schedule: once it is
// done, no further attempts run.
func Do(ctx context.Context, cfg Config, op func(ctx context.Context) error) error {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}

	var lastErr error
	for i := 0; i < cfg.Attempts; i++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		attemptCtx := ctx
		var cancel context.CancelFunc = func() {}
		if cfg.Timeout > 0 {
			budget := cfg.Timeout + time.Duration(i)*cfg.TimeoutStep
			attemptCtx, cancel = context.WithTimeout(ctx, budget)
		}
		err := op(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// IsTimeout reports whether the error is an attempt deadline expiry.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
