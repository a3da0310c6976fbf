package webhook_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scanguard/internal/webhook"
)

func TestSign(t *testing.T) {
	sig := webhook.Sign("secret", []byte(`{"a":1}`))
	require.True(t, strings.HasPrefix(sig, webhook.SignaturePrefix))
	require.Len(t, sig, len(webhook.SignaturePrefix)+64)

	require.True(t, webhook.Verify("secret", []byte(`{"a":1}`), sig))
	require.False(t, webhook.Verify("other", []byte(`{"a":1}`), sig))
	require.False(t, webhook.Verify("secret", []byte(`{"a":2}`), sig))
	require.False(t, webhook.Verify("secret", []byte(`{"a":1}`), ""))
}
