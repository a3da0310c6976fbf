package webhook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scanguard/internal/webhook"
)

func TestBackoff_Delay(t *testing.T) {
	b := webhook.Backoff{Base: time.Second, Factor: 2, Jitter: func() float64 { return 0 }}

	require.Equal(t, time.Second, b.Delay(1))
	require.Equal(t, 2*time.Second, b.Delay(2))
	require.Equal(t, 4*time.Second, b.Delay(3))
	require.Equal(t, 16*time.Second, b.Delay(5))
	require.Equal(t, time.Second, b.Delay(0))
}

func TestBackoff_jitterKeepsDelaysIncreasing(t *testing.T) {
	high := webhook.Backoff{Base: time.Second, Factor: 2, Jitter: func() float64 { return 0.999 }}
	low := webhook.Backoff{Base: time.Second, Factor: 2, Jitter: func() float64 { return 0 }}

	for attempt := 1; attempt < 6; attempt++ {
		require.Greater(t, high.Delay(attempt), low.Delay(attempt))
		require.Less(t, high.Delay(attempt), low.Delay(attempt+1))
	}
}

func TestBackoff_defaultJitterBounds(t *testing.T) {
	b := webhook.Backoff{Base: 100 * time.Millisecond, Factor: 2}
	for range 100 {
		d := b.Delay(2)
		require.GreaterOrEqual(t, d, 200*time.Millisecond)
		require.Less(t, d, 300*time.Millisecond)
	}
}
