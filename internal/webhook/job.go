package webhook

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// QueueName is the River queue webhook deliveries run on.
const QueueName = "webhooks"

// jobMaxAttempts bounds River level retries of unexpected errors such as a
// database outage. Delivery attempts are counted on the event row instead.
const jobMaxAttempts = 25

// JobArgs contains the arguments of a webhook delivery job submitted to River.
type JobArgs struct {
	// EventID identifies the webhook event to deliver. It is marked as unique
	// so River keeps at most one live job per event.
	EventID uuid.UUID `json:"eventId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the delivery worker.
func (args JobArgs) Kind() string { return "WebhookDeliveryJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Completed jobs are not part of the unique states so a dead-lettered event
// can be redelivered.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: jobMaxAttempts,
		Queue:       QueueName,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
