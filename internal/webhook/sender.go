package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"scanguard/pkg/domain"
)

// maxErrorBody bounds how much of a failed response is kept as last_error.
const maxErrorBody = 512

// Delivery headers.
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderScanID         = "X-Scan-Id"
	HeaderEvent          = "X-Webhook-Event"
	HeaderEventID        = "X-Webhook-Id"
	HeaderAttempt        = "X-Webhook-Attempt"
	HeaderSignature      = "X-Webhook-Signature"
)

// Attempt is a single delivery of an event to an endpoint.
type Attempt struct {
	Event  domain.WebhookEvent
	URL    string
	Secret string
	// Number is the 1-based attempt number.
	Number int
}

// HTTPSender posts events to webhook endpoints.
type HTTPSender struct {
	client    *http.Client
	userAgent string
}

// NewHTTPSender creates an HTTPSender. The client's Timeout bounds every attempt.
func NewHTTPSender(client *http.Client, userAgent string) *HTTPSender {
	return &HTTPSender{client: client, userAgent: userAgent}
}

// Send performs the attempt. Any non-2xx response is an error.
func (s *HTTPSender) Send(ctx context.Context, a Attempt) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, bytes.NewReader(a.Event.Payload))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set(HeaderIdempotencyKey, a.Event.IdempotencyKey())
	req.Header.Set(HeaderScanID, a.Event.ScanID.String())
	req.Header.Set(HeaderEvent, string(a.Event.Type))
	req.Header.Set(HeaderEventID, a.Event.ID.String())
	req.Header.Set(HeaderAttempt, strconv.Itoa(a.Number))
	if a.Secret != "" {
		req.Header.Set(HeaderSignature, Sign(a.Secret, a.Event.Payload))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("endpoint responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
