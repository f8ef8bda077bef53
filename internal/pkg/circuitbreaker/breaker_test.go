package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

func newTestBreaker(threshold uint32, timeout time.Duration) *CircuitBreaker {
	cfg := DefaultConfig("trips-api")
	cfg.FailureThreshold = threshold
	cfg.Timeout = timeout
	return New(cfg, logger.NewNopLogger())
}

func fail(context.Context) error    { return errUpstream }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := newTestBreaker(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, fail), errUpstream)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called, "open breaker must not call through")
}

func TestCircuitBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(2, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	require.NoError(t, cb.Execute(ctx, succeed))
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Stats().ConsecutiveFailures)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := newTestBreaker(1, time.Second)
	now := time.Now()
	cb.now = func() time.Time { return now }
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	require.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(1, time.Second)
	now := time.Now()
	cb.now = func() time.Time { return now }
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	now = now.Add(2 * time.Second)
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_StateReportsHalfOpenAfterTimeout(t *testing.T) {
	cb := newTestBreaker(1, time.Second)
	now := time.Now()
	cb.now = func() time.Time { return now }

	_ = cb.Execute(context.Background(), fail)
	assert.Equal(t, StateOpen, cb.State())
	assert.Equal(t, "OPEN", cb.Stats().State)

	// no request arrives while the timeout elapses
	now = now.Add(2 * time.Second)
	assert.Equal(t, StateHalfOpen, cb.State())
	assert.Equal(t, "HALF_OPEN", cb.Stats().State)

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestNew_NilLoggerUsesGlobalLogger(t *testing.T) {
	cb := New(DefaultConfig("trips-api"), nil)

	assert.Same(t, logger.GetGlobalLogger(), cb.logger)
	assert.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			_ = cb.Execute(context.Background(), fail)
		}
	})
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_CanceledContextIsNotAFailure(t *testing.T) {
	cb := newTestBreaker(1, time.Minute)

	err := cb.Execute(context.Background(), func(context.Context) error {
		return context.Canceled
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Stats(t *testing.T) {
	cb := newTestBreaker(5, time.Minute)
	_ = cb.Execute(context.Background(), fail)

	stats := cb.Stats()
	assert.Equal(t, "trips-api", stats.Name)
	assert.Equal(t, "CLOSED", stats.State)
	assert.Equal(t, uint32(1), stats.TotalRequests)
	assert.Equal(t, uint32(1), stats.TotalFailures)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}
