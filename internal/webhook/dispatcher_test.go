package webhook_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scanguard/internal/webhook"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
	mockstorage "scanguard/pkg/storage/mock"
)

const secret = "whsec_test"

type hit struct {
	header http.Header
	body   []byte
}

// receiver is a webhook endpoint answering with the given status codes in
// order, repeating the last one.
type receiver struct {
	mu       sync.Mutex
	statuses []int
	hits     []hit
}

func (rc *receiver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	rc.mu.Lock()
	rc.hits = append(rc.hits, hit{header: r.Header.Clone(), body: b})
	status := rc.statuses[min(len(rc.hits), len(rc.statuses))-1]
	rc.mu.Unlock()

	w.WriteHeader(status)
}

func (rc *receiver) count() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return len(rc.hits)
}

type fixture struct {
	store      *memStore
	dispatcher webhook.Dispatcher
	receiver   *receiver
	account    domain.Account
	now        time.Time
}

func newFixture(t *testing.T, statuses ...int) *fixture {
	t.Helper()

	rc := &receiver{statuses: statuses}
	srv := httptest.NewServer(rc)
	t.Cleanup(srv.Close)

	f := &fixture{
		store:    newMemStore(),
		receiver: rc,
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		account: domain.Account{
			ID:            domain.AccountID(uuid.New()),
			Tier:          domain.TierPro,
			Active:        true,
			WebhookURL:    srv.URL + "/hook",
			WebhookSecret: secret,
		},
	}
	f.store.putAccount(f.account)

	f.dispatcher = webhook.New(f.store,
		webhook.NewHTTPSender(srv.Client(), "ScanGuard-Webhook/1.0"),
		nil,
		webhook.Options{
			MaxAttempts:    6,
			Backoff:        webhook.Backoff{Base: time.Second, Factor: 2},
			AttemptTimeout: 5 * time.Second,
			OrderingDelay:  time.Second,
			Now:            func() time.Time { return f.now },
		})

	return f
}

func (f *fixture) newEvent(seq int64, scanID domain.ScanID) domain.WebhookEvent {
	score := 0.9
	e := webhook.NewScanCompleted(&domain.Scan{
		ID:        scanID,
		AccountID: f.account.ID,
		URL:       "https://example.com/airdrop",
		Score:     &score,
		Flags:     []string{"contains_giveaway_keyword"},
		Status:    domain.ScanStatusCompleted,
	}, f.now)
	e.Sequence = seq
	f.store.putEvent(e)

	return e
}

// drive calls Deliver the way the worker does until the event needs no more
// attempts and returns the requested retry delays.
func (f *fixture) drive(t *testing.T, id domain.WebhookEventID) ([]time.Duration, error) {
	t.Helper()

	var delays []time.Duration
	for range 20 {
		err := f.dispatcher.Deliver(context.Background(), id)
		var retry *webhook.RetryError
		if !errors.As(err, &retry) {
			return delays, err
		}
		delays = append(delays, retry.Delay)
	}
	t.Fatal("delivery did not settle")

	return nil, nil
}

func TestDeliver_succeedsAfterThreeFailures(t *testing.T) {
	f := newFixture(t, 500, 500, 500, 200)
	scanID := domain.ScanID(uuid.New())
	e := f.newEvent(1, scanID)

	delays, err := f.drive(t, e.ID)
	require.NoError(t, err)
	require.Len(t, delays, 3)
	require.Equal(t, 4, f.receiver.count())

	stored := f.store.event(e.ID)
	require.Equal(t, domain.WebhookEventDelivered, stored.Status)
	require.Equal(t, 4, stored.AttemptCount)
	require.Equal(t, f.now, stored.DeliveredAt)

	// a duplicate job for the same event does not deliver again
	require.NoError(t, f.dispatcher.Deliver(context.Background(), e.ID))
	require.Equal(t, 4, f.receiver.count())

	for i, h := range f.receiver.hits {
		require.Equal(t, scanID.String(), h.header.Get(webhook.HeaderScanID))
		require.Equal(t, "scan.completed:"+scanID.String(), h.header.Get(webhook.HeaderIdempotencyKey))
		require.Equal(t, "scan.completed", h.header.Get(webhook.HeaderEvent))
		require.Equal(t, e.ID.String(), h.header.Get(webhook.HeaderEventID))
		require.Equal(t, "ScanGuard-Webhook/1.0", h.header.Get("User-Agent"))
		require.Equal(t, "application/json", h.header.Get("Content-Type"))
		require.Equal(t, []string{"1", "2", "3", "4"}[i], h.header.Get(webhook.HeaderAttempt))
		require.True(t, webhook.Verify(secret, h.body, h.header.Get(webhook.HeaderSignature)))
		require.Equal(t, e.Payload, h.body)
	}
}

func TestDeliver_deadLettersAfterMaxAttempts(t *testing.T) {
	f := newFixture(t, 503)
	e := f.newEvent(1, domain.ScanID(uuid.New()))

	delays, err := f.drive(t, e.ID)
	require.NoError(t, err)
	require.Equal(t, 6, f.receiver.count())
	require.Len(t, delays, 5)
	for i := 1; i < len(delays); i++ {
		require.Greater(t, delays[i], delays[i-1])
	}

	stored := f.store.event(e.ID)
	require.Equal(t, domain.WebhookEventDeadLettered, stored.Status)
	require.Equal(t, 6, stored.AttemptCount)
	require.Contains(t, stored.LastError, "attempt 6 failed")
	require.Contains(t, stored.LastError, "503")

	require.NoError(t, f.dispatcher.Deliver(context.Background(), e.ID))
	require.Equal(t, 6, f.receiver.count())
}

func TestAbandon_unblocksLaterEventsOfScan(t *testing.T) {
	f := newFixture(t, 200)
	scanID := domain.ScanID(uuid.New())
	first := f.newEvent(1, scanID)
	second := f.newEvent(2, scanID)

	err := f.dispatcher.Deliver(context.Background(), second.ID)
	require.ErrorAs(t, err, new(*webhook.RetryError))
	require.Equal(t, 0, f.receiver.count())

	require.NoError(t, f.dispatcher.Abandon(context.Background(), first.ID, errors.New("connection refused")))
	stored := f.store.event(first.ID)
	require.Equal(t, domain.WebhookEventDeadLettered, stored.Status)
	require.Contains(t, stored.LastError, "connection refused")

	require.NoError(t, f.dispatcher.Deliver(context.Background(), second.ID))
	require.Equal(t, domain.WebhookEventDelivered, f.store.event(second.ID).Status)

	// final events are left alone
	require.NoError(t, f.dispatcher.Abandon(context.Background(), second.ID, errors.New("late")))
	require.Equal(t, domain.WebhookEventDelivered, f.store.event(second.ID).Status)
	require.NoError(t, f.dispatcher.Abandon(context.Background(), domain.WebhookEventID(uuid.New()), errors.New("gone")))
}

func TestDeliver_recordsScheduleOfNextAttempt(t *testing.T) {
	f := newFixture(t, 500)
	e := f.newEvent(1, domain.ScanID(uuid.New()))

	err := f.dispatcher.Deliver(context.Background(), e.ID)
	var retry *webhook.RetryError
	require.ErrorAs(t, err, &retry)

	stored := f.store.event(e.ID)
	require.Equal(t, domain.WebhookEventPending, stored.Status)
	require.Equal(t, 1, stored.AttemptCount)
	require.Equal(t, f.now.Add(retry.Delay), stored.NextAttemptAt)
	require.GreaterOrEqual(t, retry.Delay, time.Second)
	require.Less(t, retry.Delay, 1500*time.Millisecond)
}

func TestDeliver_cancelledWithoutWebhook(t *testing.T) {
	f := newFixture(t, 200)
	e := f.newEvent(1, domain.ScanID(uuid.New()))

	a := f.account
	a.WebhookURL = ""
	f.store.putAccount(a)

	err := f.dispatcher.Deliver(context.Background(), e.ID)
	require.ErrorIs(t, err, webhook.ErrCancelled)
	require.Equal(t, 0, f.receiver.count())
	require.Equal(t, domain.WebhookEventCancelled, f.store.event(e.ID).Status)
}

func TestDeliver_stopsRetryingAfterDeregistration(t *testing.T) {
	f := newFixture(t, 500)
	e := f.newEvent(1, domain.ScanID(uuid.New()))

	err := f.dispatcher.Deliver(context.Background(), e.ID)
	require.ErrorAs(t, err, new(*webhook.RetryError))

	a := f.account
	a.WebhookURL = ""
	a.WebhookSecret = ""
	f.store.putAccount(a)

	err = f.dispatcher.Deliver(context.Background(), e.ID)
	require.ErrorIs(t, err, webhook.ErrCancelled)
	require.Equal(t, 1, f.receiver.count())
	require.Equal(t, 1, f.store.event(e.ID).AttemptCount)
}

func TestDeliver_waitsForEarlierEventOfScan(t *testing.T) {
	f := newFixture(t, 200)
	scanID := domain.ScanID(uuid.New())
	first := f.newEvent(1, scanID)
	second := f.newEvent(2, scanID)
	other := f.newEvent(3, domain.ScanID(uuid.New()))

	err := f.dispatcher.Deliver(context.Background(), second.ID)
	var retry *webhook.RetryError
	require.ErrorAs(t, err, &retry)
	require.Equal(t, time.Second, retry.Delay)
	require.Equal(t, 0, f.receiver.count())
	require.Equal(t, 0, f.store.event(second.ID).AttemptCount)

	// other scans are not held back
	require.NoError(t, f.dispatcher.Deliver(context.Background(), other.ID))

	require.NoError(t, f.dispatcher.Deliver(context.Background(), first.ID))
	require.NoError(t, f.dispatcher.Deliver(context.Background(), second.ID))
	require.Equal(t, 3, f.receiver.count())
	require.Equal(t, first.ID.String(), f.receiver.hits[1].header.Get(webhook.HeaderEventID))
	require.Equal(t, second.ID.String(), f.receiver.hits[2].header.Get(webhook.HeaderEventID))
}

func TestDeliver_unknownEvent(t *testing.T) {
	f := newFixture(t, 200)

	err := f.dispatcher.Deliver(context.Background(), domain.WebhookEventID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestEnqueue_addsJobPerStoredEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	d := webhook.New(mockstorage.NewMockStorage(ctrl), nil, nil, webhook.Options{MaxAttempts: 6})

	score := 0.7
	scan := &domain.Scan{ID: domain.ScanID(uuid.New()), Score: &score, Status: domain.ScanStatusCompleted}
	events := webhook.ScanEvents(scan, time.Now())
	require.Len(t, events, 2)

	// the flagged event already exists and is skipped by storage
	tx.EXPECT().StoreWebhookEvents(gomock.Any(), events[0], events[1]).Return(events[:1], nil)
	tx.EXPECT().AddJob(gomock.Any(), webhook.JobArgs{EventID: uuid.UUID(events[0].ID)}, gomock.Nil()).Return(true, nil)

	stored, err := d.Enqueue(context.Background(), tx, events...)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestEnqueue_nothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := webhook.New(mockstorage.NewMockStorage(ctrl), nil, nil, webhook.Options{})

	stored, err := d.Enqueue(context.Background(), mockstorage.NewMockAllStorage(ctrl))
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestEnqueue_storageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := mockstorage.NewMockAllStorage(ctrl)
	d := webhook.New(mockstorage.NewMockStorage(ctrl), nil, nil, webhook.Options{})

	tx.EXPECT().StoreWebhookEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := d.Enqueue(context.Background(), tx, domain.WebhookEvent{})
	require.ErrorContains(t, err, "db down")
}

func TestRedeliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	d := webhook.New(st, nil, nil, webhook.Options{})
	id := domain.WebhookEventID(uuid.New())

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().RequeueWebhookEvent(gomock.Any(), id).
				Return(&domain.WebhookEvent{ID: id, Status: domain.WebhookEventPending}, nil),
			tx.EXPECT().AddJob(gomock.Any(), webhook.JobArgs{EventID: uuid.UUID(id)}, gomock.Nil()).Return(true, nil),
		)
	})

	e, err := d.Redeliver(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, domain.WebhookEventPending, e.Status)
}

func TestRedeliver_notDeadLettered(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	d := webhook.New(st, nil, nil, webhook.Options{})

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RequeueWebhookEvent(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	_, err := d.Redeliver(context.Background(), domain.WebhookEventID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	d := webhook.New(st, nil, nil, webhook.Options{})

	st.EXPECT().WebhookEventsByStatus(gomock.Any(), domain.WebhookEventDeadLettered, uint(50)).
		Return([]domain.WebhookEvent{{Status: domain.WebhookEventDeadLettered}}, nil)

	events, err := d.DeadLetters(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestJobArgs(t *testing.T) {
	args := webhook.JobArgs{EventID: uuid.New()}
	require.Equal(t, "WebhookDeliveryJob", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, webhook.QueueName, opts.Queue)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}
