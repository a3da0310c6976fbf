package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"scanguard/pkg/domain"
	"time"

	"github.com/google/uuid"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgAccount struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	APIKey string    `db:"api_key"`
	Email  string    `db:"email"`
	Tier   string    `db:"tier"`

	ScansUsed  int   `db:"scans_used"  goqu:"skipinsert"`
	ScansLimit int   `db:"scans_limit"`
	TotalScans int64 `db:"total_scans" goqu:"skipinsert"`

	WebhookURL    sql.NullString `db:"webhook_url"`
	WebhookSecret sql.NullString `db:"webhook_secret"`
	Active        bool           `db:"active"`

	PeriodStart time.Time    `db:"period_start" goqu:"skipinsert"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:            domain.AccountID(p.ID),
		APIKey:        p.APIKey,
		Email:         p.Email,
		Tier:          domain.Tier(p.Tier),
		ScansUsed:     p.ScansUsed,
		ScansLimit:    p.ScansLimit,
		TotalScans:    p.TotalScans,
		WebhookURL:    p.WebhookURL.String,
		WebhookSecret: p.WebhookSecret.String,
		Active:        p.Active,
		PeriodStart:   p.PeriodStart,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgAccount) FromDomain(a domain.Account) {
	*p = PgAccount{
		ID:            uuid.UUID(a.ID),
		APIKey:        a.APIKey,
		Email:         a.Email,
		Tier:          string(a.Tier),
		ScansLimit:    a.ScansLimit,
		WebhookURL:    nullString(a.WebhookURL),
		WebhookSecret: nullString(a.WebhookSecret),
		Active:        a.Active,
	}
}

type PgScan struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	AccountID uuid.UUID `db:"account_id"`

	URL    string         `db:"url"`
	Source sql.NullString `db:"source"`

	Score  sql.NullFloat64 `db:"score"`
	Flags  json.RawMessage `db:"flags"`
	Status string          `db:"status"`

	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt  sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
	ResolvedAt sql.NullTime `db:"resolved_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() (*domain.Scan, error) {
	var flags []string
	if len(p.Flags) > 0 {
		if err := json.Unmarshal(p.Flags, &flags); err != nil {
			return nil, fmt.Errorf("could not unmarshal scan flags: %w", err)
		}
	}

	var score *float64
	if p.Score.Valid {
		v := p.Score.Float64
		score = &v
	}

	return &domain.Scan{
		ID:         domain.ScanID(p.ID),
		AccountID:  domain.AccountID(p.AccountID),
		URL:        p.URL,
		Source:     p.Source.String,
		Score:      score,
		Flags:      flags,
		Status:     domain.ScanStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		ResolvedAt: p.ResolvedAt.Time,
	}, nil
}

func (p *PgScan) FromDomain(scan domain.Scan) error {
	flags, err := marshalFlags(scan.Flags)
	if err != nil {
		return err
	}

	*p = PgScan{
		ID:        uuid.UUID(scan.ID),
		AccountID: uuid.UUID(scan.AccountID),
		URL:       scan.URL,
		Source:    nullString(scan.Source),
		Flags:     flags,
		Status:    string(scan.Status),
	}
	if scan.Score != nil {
		p.Score = sql.NullFloat64{Float64: *scan.Score, Valid: true}
	}

	return nil
}

func marshalFlags(flags []string) (json.RawMessage, error) {
	if flags == nil {
		flags = []string{}
	}
	b, err := json.Marshal(flags)
	if err != nil {
		return nil, fmt.Errorf("could not marshal scan flags: %w", err)
	}

	return b, nil
}

func pgScansToDomain(scans []PgScan) ([]domain.Scan, error) {
	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		d, err := scan.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgReviewDecision struct {
	ScanID    uuid.UUID `db:"scan_id"`
	Verdict   string    `db:"verdict"`
	Notes     string    `db:"notes"`
	Reviewer  string    `db:"reviewer"`
	DecidedAt time.Time `db:"decided_at" goqu:"skipinsert"`
}

func (p *PgReviewDecision) ToDomain() *domain.ReviewDecision {
	return &domain.ReviewDecision{
		ScanID:    domain.ScanID(p.ScanID),
		Verdict:   domain.Verdict(p.Verdict),
		Notes:     p.Notes,
		Reviewer:  p.Reviewer,
		DecidedAt: p.DecidedAt,
	}
}

type PgWebhookEvent struct {
	ID        uuid.UUID       `db:"id"         goqu:"skipinsert"`
	Sequence  int64           `db:"seq"        goqu:"skipinsert"`
	Type      string          `db:"event_type"`
	ScanID    uuid.UUID       `db:"scan_id"`
	AccountID uuid.UUID       `db:"account_id"`
	Payload   json.RawMessage `db:"payload"`

	Status        string         `db:"status"          goqu:"skipinsert"`
	AttemptCount  int            `db:"attempt_count"   goqu:"skipinsert"`
	NextAttemptAt time.Time      `db:"next_attempt_at" goqu:"skipinsert"`
	LastError     sql.NullString `db:"last_error"      goqu:"skipinsert"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	DeliveredAt sql.NullTime `db:"delivered_at" goqu:"skipinsert"`
}

func (p *PgWebhookEvent) ToDomain() *domain.WebhookEvent {
	return &domain.WebhookEvent{
		ID:            domain.WebhookEventID(p.ID),
		Type:          domain.EventType(p.Type),
		ScanID:        domain.ScanID(p.ScanID),
		AccountID:     domain.AccountID(p.AccountID),
		Sequence:      p.Sequence,
		Payload:       p.Payload,
		Status:        domain.WebhookEventStatus(p.Status),
		AttemptCount:  p.AttemptCount,
		NextAttemptAt: p.NextAttemptAt,
		LastError:     p.LastError.String,
		CreatedAt:     p.CreatedAt,
		DeliveredAt:   p.DeliveredAt.Time,
	}
}

func (p *PgWebhookEvent) FromDomain(e domain.WebhookEvent) {
	*p = PgWebhookEvent{
		Type:      string(e.Type),
		ScanID:    uuid.UUID(e.ScanID),
		AccountID: uuid.UUID(e.AccountID),
		Payload:   e.Payload,
	}
}

func pgWebhookEventsToDomain(events []PgWebhookEvent) []domain.WebhookEvent {
	out := make([]domain.WebhookEvent, 0, len(events))
	for i := range events {
		out = append(out, *events[i].ToDomain())
	}

	return out
}
