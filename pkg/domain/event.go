package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a scan lifecycle notification.
type EventType string

const (
	// EventScanCompleted is emitted when a scan reaches completed.
	EventScanCompleted EventType = "scan.completed"
	// EventScanFlagged is emitted when a scan scored above the review threshold.
	EventScanFlagged EventType = "scan.flagged"
	// EventReviewCompleted is emitted when a reviewer resolves a scan.
	EventReviewCompleted EventType = "review.completed"
)

// WebhookEventID uniquely identifies a stored webhook event.
type WebhookEventID uuid.UUID

// String returns the canonical textual form of the event ID.
func (id WebhookEventID) String() string { return uuid.UUID(id).String() }

// WebhookEventStatus is the delivery state of a webhook event.
type WebhookEventStatus string

const (
	// WebhookEventPending means delivery is still being attempted.
	WebhookEventPending WebhookEventStatus = "pending"
	// WebhookEventDelivered means the endpoint acknowledged the event with a 2xx.
	WebhookEventDelivered WebhookEventStatus = "delivered"
	// WebhookEventDeadLettered means all attempts were exhausted.
	WebhookEventDeadLettered WebhookEventStatus = "dead_lettered"
	// WebhookEventCancelled means the account removed its webhook before delivery.
	WebhookEventCancelled WebhookEventStatus = "cancelled"
)

// Final reports whether no more delivery attempts will be made.
func (s WebhookEventStatus) Final() bool {
	return s != WebhookEventPending
}

// WebhookEvent is an outbound lifecycle notification. At most one exists per
// (ScanID, Type).
type WebhookEvent struct {
	ID        WebhookEventID `json:"id"`
	Type      EventType      `json:"event"`
	ScanID    ScanID         `json:"scanId"`
	AccountID AccountID      `json:"accountId"`
	// Sequence is a monotonically increasing insertion number used to keep
	// per-scan delivery order.
	Sequence int64 `json:"sequence"`
	// Payload is the JSON envelope delivered to the endpoint.
	Payload []byte `json:"-"`

	Status        WebhookEventStatus `json:"status"`
	AttemptCount  int                `json:"attemptCount"`
	NextAttemptAt time.Time          `json:"nextAttemptAt"`
	LastError     string             `json:"lastError,omitempty"`

	CreatedAt   time.Time `json:"createdAt"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

// IdempotencyKey is the value receivers use to de-duplicate retried deliveries.
func (e *WebhookEvent) IdempotencyKey() string {
	return string(e.Type) + ":" + e.ScanID.String()
}
