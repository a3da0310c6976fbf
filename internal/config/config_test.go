package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scanguard/internal/config"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
webhook:
  maxAttempts: 3
seed:
  urls:
    - https://example.com/a
    - https://example.com/b
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 3, cfg.Webhook.MaxAttempts)
	require.Equal(t, time.Second, cfg.Webhook.BaseDelay)
	require.InDelta(t, 2.0, cfg.Webhook.Factor, 0)
	require.Equal(t, 10*time.Second, cfg.Webhook.AttemptTimeout)
	require.Equal(t, 10*time.Second, cfg.Detector.Timeout)
	require.Equal(t, 60, cfg.HTTP.RateLimitPerMinute)
	require.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, cfg.Seed.URLs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: development\n"), 0o600))
	t.Setenv("WEBHOOK_MAX_ATTEMPTS", "9")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Webhook.MaxAttempts)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoad_RejectsWebhookBackoffThatDoesNotGrow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
webhook:
  factor: 1.5
  maxAttempts: 0
`), 0o600))

	_, err := config.Load(path)
	require.ErrorContains(t, err, "webhook.factor must be at least 2")
	require.ErrorContains(t, err, "webhook.maxAttempts must be at least 1")
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: development\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Webhook.Factor = 2.5
	require.NoError(t, cfg.Validate())

	cfg.Webhook.BaseDelay = 0
	cfg.Webhook.AttemptTimeout = -time.Second
	err = cfg.Validate()
	require.ErrorContains(t, err, "webhook.baseDelay must be positive")
	require.ErrorContains(t, err, "webhook.attemptTimeout must be positive")
}
