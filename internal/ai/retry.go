package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// sleep is swapped out in tests.
var sleep = time.Sleep

// withRetry runs fn up to attempts times, doubling the delay between tries.
// It stops early when the context is done so callers never wait past their
// deadline. The last error is returned once attempts are exhausted.
func withRetry(ctx context.Context, op string, attempts int, baseDelay time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if i < attempts-1 {
			delay := baseDelay << uint(i)
			log.Warn().Err(err).Str("op", op).Int("attempt", i+1).Dur("backoff", delay).Msg("Collaborator call failed, retrying")
			if werr := waitFor(ctx, delay); werr != nil {
				return werr
			}
		}
	}
	return err
}

func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
