package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr int

func (s statusErr) Error() string   { return fmt.Sprintf("status %d", int(s)) }
func (s statusErr) StatusCode() int { return int(s) }

func TestNewAdaptiveLimiter_Clamps(t *testing.T) {
	lim := NewAdaptiveLimiter(0, 0, 10, 1, 0.5)
	assert.Equal(t, 1.0, lim.CurrentLimit())
	assert.Equal(t, 1, lim.CurrentBurst())

	lim = NewAdaptiveLimiter(50, 1, 10, 1, 0.5)
	assert.Equal(t, 10.0, lim.CurrentLimit())
}

func TestObserve_RateLimitedHalves(t *testing.T) {
	lim := NewAdaptiveLimiter(8, 1, 10, 1, 0.5)

	lim.Observe(statusErr(429))
	assert.Equal(t, 4.0, lim.CurrentLimit())
	assert.Equal(t, 4, lim.CurrentBurst())

	lim.Observe(errors.Wrap(statusErr(503), "fetch"))
	assert.Equal(t, 2.0, lim.CurrentLimit())

	lim.Observe(statusErr(503))
	lim.Observe(statusErr(503))
	assert.Equal(t, 1.0, lim.CurrentLimit(), "never below min")
}

func TestObserve_IgnoresClientErrors(t *testing.T) {
	lim := NewAdaptiveLimiter(4, 1, 10, 1, 0.5)
	lim.Observe(statusErr(404))
	lim.Observe(errors.New("dial tcp: connection refused"))
	assert.Equal(t, 4.0, lim.CurrentLimit())
}

func TestObserve_SuccessRaisesAfterRecoveryWindow(t *testing.T) {
	now := time.Now()
	lim := NewAdaptiveLimiter(4, 1, 5, 1, 0.5)
	lim.now = func() time.Time { return now }

	lim.Observe(statusErr(429))
	require.Equal(t, 2.0, lim.CurrentLimit())

	lim.Observe(nil)
	assert.Equal(t, 2.0, lim.CurrentLimit(), "held during recovery window")

	now = now.Add(recoveryWindow + time.Second)
	lim.Observe(nil)
	lim.Observe(nil)
	lim.Observe(nil)
	lim.Observe(nil)
	assert.Equal(t, 5.0, lim.CurrentLimit(), "capped at max")
}

func TestWait_RespectsContext(t *testing.T) {
	lim := NewAdaptiveLimiter(1, 1, 1, 0, 0.5)
	require.NoError(t, lim.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, lim.Wait(ctx))
}

func TestDefaultClassifier(t *testing.T) {
	assert.True(t, DefaultClassifier(statusErr(429)))
	assert.True(t, DefaultClassifier(statusErr(500)))
	assert.False(t, DefaultClassifier(statusErr(400)))
	assert.False(t, DefaultClassifier(errors.New("plain")))
}
