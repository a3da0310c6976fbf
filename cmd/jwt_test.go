package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scanguard/internal/api/handler/adminhandler"
)

func reviewerKeyPair(t *testing.T) (string, string) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})

	return string(privPEM), string(pubPEM)
}

func TestSignAdminKey_AcceptedByAdminAPI(t *testing.T) {
	privPEM, pubPEM := reviewerKeyPair(t)
	sec, err := adminhandler.NewSecHandler(&adminhandler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	signed, err := signAdminKey(privPEM, "alice@trust.example", time.Hour, time.Now())
	require.NoError(t, err)

	reviewer, err := sec.Authenticate(signed)
	require.NoError(t, err)
	require.Equal(t, "alice@trust.example", reviewer)

	expired, err := signAdminKey(privPEM, "alice@trust.example", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = sec.Authenticate(expired)
	require.Error(t, err)
}

func TestSignAdminKey_Errors(t *testing.T) {
	privPEM, _ := reviewerKeyPair(t)

	_, err := signAdminKey(privPEM, "bob", 0, time.Now())
	require.ErrorContains(t, err, "ttl must be positive")

	_, err = signAdminKey("not a key", "bob", time.Hour, time.Now())
	require.ErrorContains(t, err, "could not parse reviewer private key")
}
