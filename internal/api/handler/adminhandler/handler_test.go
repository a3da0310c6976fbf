package adminhandler_test

import (
	"crypto/rsa"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scanguard/internal/api/handler/adminhandler"
	"scanguard/internal/review"
	mockreview "scanguard/internal/review/mock"
	mockwebhook "scanguard/internal/webhook/mock"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

const reviewer = "alice@trust.example"

type fixture struct {
	queue      *mockreview.MockQueue
	dispatcher *mockwebhook.MockDispatcher
	router     chi.Router
	priv       *rsa.PrivateKey
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	ctrl := gomock.NewController(t)
	f := &fixture{
		queue:      mockreview.NewMockQueue(ctrl),
		dispatcher: mockwebhook.NewMockDispatcher(ctrl),
		router:     chi.NewRouter(),
		priv:       priv,
	}
	h := adminhandler.New(adminhandler.Deps{
		Queue:      f.queue,
		Dispatcher: f.dispatcher,
	}, newSecHandlerForTest(t, pubPEM))
	f.router.Route("/admin", h.Routes)

	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	now := time.Now()
	req.Header.Set(adminhandler.AdminKeyHeader, signJWTRS256(t, f.priv, reviewer, now, now.Add(time.Hour)))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func pendingScan(n int) domain.Scan {
	score := 0.8
	id := uuid.MustParse("00000000-0000-4000-8000-00000000000" + string(rune('0'+n)))

	return domain.Scan{
		ID:        domain.ScanID(id),
		URL:       "https://claim.example.com/" + string(rune('a'+n)),
		Score:     &score,
		Flags:     []string{"contains_giveaway_keyword"},
		Status:    domain.ScanStatusPendingReview,
		CreatedAt: time.Date(2026, 10, 1, 12, n, 0, 0, time.UTC),
	}
}

func seqOf(scans []domain.Scan, tail error) iter.Seq2[domain.Scan, error] {
	return func(yield func(domain.Scan, error) bool) {
		for _, s := range scans {
			if !yield(s, nil) {
				return
			}
		}
		if tail != nil {
			yield(domain.Scan{}, tail)
		}
	}
}

func TestRoutes_RequireAdminKey(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dead-letters", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPendingReviews(t *testing.T) {
	f := newFixture(t)
	f.queue.EXPECT().ListPending(gomock.Any()).Return(seqOf([]domain.Scan{pendingScan(1), pendingScan(2)}, nil))

	rec := f.do(t, http.MethodGet, "/admin/pending-reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"count": 2,
		"pending_reviews": [
			{
				"scan_id": "00000000-0000-4000-8000-000000000001",
				"url": "https://claim.example.com/b",
				"score": 0.8,
				"flags": ["contains_giveaway_keyword"],
				"status": "pending_review",
				"created_at": "2026-10-01T12:01:00Z",
				"resolved_at": null
			},
			{
				"scan_id": "00000000-0000-4000-8000-000000000002",
				"url": "https://claim.example.com/c",
				"score": 0.8,
				"flags": ["contains_giveaway_keyword"],
				"status": "pending_review",
				"created_at": "2026-10-01T12:02:00Z",
				"resolved_at": null
			}
		]
	}`, rec.Body.String())
}

func TestPendingReviews_Limit(t *testing.T) {
	f := newFixture(t)
	// a trailing error must not be reached once the limit is hit
	f.queue.EXPECT().ListPending(gomock.Any()).
		Return(seqOf([]domain.Scan{pendingScan(1), pendingScan(2), pendingScan(3)}, errors.New("boom")))

	rec := f.do(t, http.MethodGet, "/admin/pending-reviews?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"count":2`)
}

func TestPendingReviews_BadLimit(t *testing.T) {
	f := newFixture(t)

	for _, l := range []string{"0", "-1", "ten"} {
		rec := f.do(t, http.MethodGet, "/admin/pending-reviews?limit="+l, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, l)
	}
}

func TestPendingReviews_StorageError(t *testing.T) {
	f := newFixture(t)
	f.queue.EXPECT().ListPending(gomock.Any()).Return(seqOf([]domain.Scan{pendingScan(1)}, errors.New("connection refused")))

	rec := f.do(t, http.MethodGet, "/admin/pending-reviews", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
}

func TestReviewDecision(t *testing.T) {
	f := newFixture(t)

	scan := pendingScan(4)
	scan.Status = domain.ScanStatusResolved
	decidedAt := time.Date(2026, 10, 3, 8, 0, 0, 0, time.UTC)
	f.queue.EXPECT().SubmitDecision(gomock.Any(), review.Decision{
		ScanID:   scan.ID,
		Verdict:  domain.VerdictFalsePositive,
		Notes:    "legit promo",
		Reviewer: reviewer,
	}).Return(&scan, &domain.ReviewDecision{
		ScanID:    scan.ID,
		Verdict:   domain.VerdictFalsePositive,
		Notes:     "legit promo",
		Reviewer:  reviewer,
		DecidedAt: decidedAt,
	}, nil)

	rec := f.do(t, http.MethodPost, "/admin/review-decision",
		`{"scan_id":"00000000-0000-4000-8000-000000000004","verdict":"false_positive","notes":"legit promo"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"scan_id": "00000000-0000-4000-8000-000000000004",
		"status": "resolved",
		"verdict": "false_positive",
		"reviewer": "alice@trust.example",
		"decided_at": "2026-10-03T08:00:00Z"
	}`, rec.Body.String())
}

func TestReviewDecision_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad scan id", body: `{"scan_id":"nope","verdict":"confirmed"}`, status: http.StatusBadRequest},
		{name: "bad json", body: `[1,2]`, status: http.StatusBadRequest},
		{
			name:   "bad verdict",
			body:   `{"scan_id":"00000000-0000-4000-8000-000000000004","verdict":"maybe"}`,
			err:    serrors.With(serrors.ErrBadRequest, "invalid verdict"),
			status: http.StatusBadRequest,
		},
		{
			name:   "not pending",
			body:   `{"scan_id":"00000000-0000-4000-8000-000000000004","verdict":"confirmed","notes":null}`,
			err:    serrors.With(serrors.ErrNotFound, "no pending review for scan"),
			status: http.StatusNotFound,
		},
		{
			name:   "already resolved",
			body:   `{"scan_id":"00000000-0000-4000-8000-000000000004","verdict":"confirmed"}`,
			err:    serrors.With(serrors.ErrConflict, "scan already resolved"),
			status: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.err != nil {
				f.queue.EXPECT().SubmitDecision(gomock.Any(), gomock.Any()).Return(nil, nil, tt.err)
			}

			rec := f.do(t, http.MethodPost, "/admin/review-decision", tt.body)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDeadLetters(t *testing.T) {
	f := newFixture(t)

	ev := domain.WebhookEvent{
		ID:           domain.WebhookEventID(uuid.MustParse("9d7a1c2e-6f0b-4b8e-9c1d-2a3b4c5d6e7f")),
		Type:         domain.EventScanFlagged,
		ScanID:       domain.ScanID(uuid.MustParse("00000000-0000-4000-8000-000000000001")),
		AccountID:    domain.AccountID(uuid.MustParse("11111111-1111-4111-8111-111111111111")),
		Status:       domain.WebhookEventDeadLettered,
		AttemptCount: 6,
		LastError:    "attempt 6 failed: status 503",
		CreatedAt:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	f.dispatcher.EXPECT().DeadLetters(gomock.Any(), uint(10)).Return([]domain.WebhookEvent{ev}, nil)

	rec := f.do(t, http.MethodGet, "/admin/dead-letters?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"dead_letters":[{
		"event_id": "9d7a1c2e-6f0b-4b8e-9c1d-2a3b4c5d6e7f",
		"event": "scan.flagged",
		"scan_id": "00000000-0000-4000-8000-000000000001",
		"account_id": "11111111-1111-4111-8111-111111111111",
		"status": "dead_lettered",
		"attempt_count": 6,
		"last_error": "attempt 6 failed: status 503",
		"created_at": "2026-10-01T00:00:00Z"
	}]}`, rec.Body.String())
}

func TestDeadLetters_DefaultLimitEmpty(t *testing.T) {
	f := newFixture(t)
	f.dispatcher.EXPECT().DeadLetters(gomock.Any(), uint(50)).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/admin/dead-letters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"dead_letters":[]}`, rec.Body.String())
}

func TestRedeliver(t *testing.T) {
	f := newFixture(t)

	id := uuid.MustParse("9d7a1c2e-6f0b-4b8e-9c1d-2a3b4c5d6e7f")
	f.dispatcher.EXPECT().Redeliver(gomock.Any(), domain.WebhookEventID(id)).Return(&domain.WebhookEvent{
		ID:     domain.WebhookEventID(id),
		Type:   domain.EventScanCompleted,
		Status: domain.WebhookEventPending,
	}, nil)

	rec := f.do(t, http.MethodPost, "/admin/dead-letters/"+id.String()+"/redeliver", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"pending"`)
	require.Contains(t, rec.Body.String(), `"attempt_count":0`)
}

func TestRedeliver_NotFound(t *testing.T) {
	f := newFixture(t)
	f.dispatcher.EXPECT().Redeliver(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "dead-lettered event not found"))

	rec := f.do(t, http.MethodPost, "/admin/dead-letters/"+uuid.NewString()+"/redeliver", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/admin/dead-letters/nope/redeliver", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
