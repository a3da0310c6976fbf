package httpdetector_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scanguard/pkg/detector/httpdetector"
	"scanguard/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *httpdetector.Client {
	t.Helper()
	c, err := httpdetector.New(&http.Client{Transport: fn}, "https://detector.internal/v2", "test-token")
	require.NoError(t, err)

	return c
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Detect_success(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "detector.internal", r.URL.Host)
		require.Equal(t, "/v2/detect", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "test-token", r.Header.Get("X-API-Key"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"url":"https://example.com/airdrop","source":"telegram"}`, string(b))

		return respond(http.StatusOK,
			`{"score":0.7,"flags":["contains_giveaway_keyword"],"details":{"source":"telegram"}}`), nil
	})

	res, err := c.Detect(context.Background(), "https://example.com/airdrop", "telegram")
	require.NoError(t, err)
	require.InDelta(t, 0.7, res.Score, 1e-9)
	require.Equal(t, []string{"contains_giveaway_keyword"}, res.Flags)
}

func TestClient_Detect_omitsEmptySource(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"url":"https://example.com"}`, string(b))

		return respond(http.StatusOK, `{"score":0.05,"flags":null}`), nil
	})

	res, err := c.Detect(context.Background(), "https://example.com", "")
	require.NoError(t, err)
	require.Empty(t, res.Flags)
	require.NotNil(t, res.Flags)
}

func TestClient_Detect_rateLimited429(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusTooManyRequests, "slow down"), nil
	})

	_, err := c.Detect(context.Background(), "https://example.com", "")
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
}

func TestClient_Detect_non2xx(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "upstream bad"), nil
	})

	_, err := c.Detect(context.Background(), "https://example.com", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
	require.Contains(t, err.Error(), "502")
}

func TestClient_Detect_transportError(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})

	_, err := c.Detect(context.Background(), "https://example.com", "")
	require.ErrorContains(t, err, "connection reset")
}

func TestDecodeResult(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		score   float64
		wantErr bool
	}{
		{name: "ok", body: `{"score":1,"flags":[]}`, score: 1},
		{name: "zero", body: `{"score":0}`, score: 0},
		{name: "above range", body: `{"score":1.2,"flags":[]}`, wantErr: true},
		{name: "negative", body: `{"score":-0.1}`, wantErr: true},
		{name: "missing score", body: `{"flags":["x"]}`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
		{name: "bad flag", body: `{"score":0.5,"flags":[1]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := httpdetector.DecodeResult([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.score, res.Score, 1e-9)
		})
	}
}

func TestNew_rejectsBadURL(t *testing.T) {
	_, err := httpdetector.New(http.DefaultClient, "ftp://detector", "")
	require.Error(t, err)

	_, err = httpdetector.New(http.DefaultClient, "http://[::1", "")
	require.Error(t, err)
}
