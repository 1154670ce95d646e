package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stubSleep(t *testing.T) *[]time.Duration {
	t.Helper()

	var slept []time.Duration
	orig := sleep
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = orig })
	return &slept
}

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	slept := stubSleep(t)

	calls := 0
	err := withRetry(context.Background(), "op", 3, 100*time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	// backoff doubles between attempts
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *slept)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	stubSleep(t)

	boom := errors.New("persistent")
	calls := 0
	err := withRetry(context.Background(), "op", 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithRetryNoDelayAfterLastAttempt(t *testing.T) {
	slept := stubSleep(t)

	err := withRetry(context.Background(), "op", 2, time.Millisecond, func(ctx context.Context) error {
		return errors.New("nope")
	})

	assert.Error(t, err)
	assert.Len(t, *slept, 1)
}

func TestWithRetryStopsOnCanceledContext(t *testing.T) {
	stubSleep(t)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := withRetry(ctx, "op", 5, time.Millisecond, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWithRetryTreatsZeroAttemptsAsOne(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), "op", 0, time.Millisecond, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWaitForZeroDuration(t *testing.T) {
	assert.NoError(t, waitFor(context.Background(), 0))
}
