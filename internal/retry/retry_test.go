package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoFirstAttemptSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Config{Attempts: 3, Timeout: time.Second}, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Config{Attempts: 3, Timeout: time.Second}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoReturnsLastError(t *testing.T) {
	first := errors.New("first")
	last := errors.New("last")
	calls := 0
	err := Do(context.Background(), Config{Attempts: 2}, func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return first
		}
		return last
	})
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, last)
}

func TestDoEscalatingDeadlines(t *testing.T) {
	cfg := Config{Attempts: 3, Timeout: 40 * time.Millisecond, TimeoutStep: 20 * time.Millisecond}
	var budgets []time.Duration
	_ = Do(context.Background(), cfg, func(ctx context.Context) error {
		dl, ok := ctx.Deadline()
		require.True(t, ok)
		budgets = append(budgets, time.Until(dl))
		return errors.New("fail")
	})

	require.Len(t, budgets, 3)
	// Each attempt's budget grows by roughly the configured step.
	assert.Greater(t, budgets[1], budgets[0])
	assert.Greater(t, budgets[2], budgets[1])
}

func TestDoParentContextAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Config{Attempts: 5, Timeout: time.Second}, func(attemptCtx context.Context) error {
		calls++
		cancel()
		return errors.New("fail once")
	})
	assert.Equal(t, 1, calls)
	assert.EqualError(t, err, "fail once")
}

func TestDoCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, Config{Attempts: 3}, func(ctx context.Context) error {
		t.Fatal("op must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(errors.Join(errors.New("wrap"), context.DeadlineExceeded)))
	assert.False(t, IsTimeout(errors.New("other")))
	assert.False(t, IsTimeout(nil))
}
