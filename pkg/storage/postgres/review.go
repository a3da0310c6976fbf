package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reviewDecisionsTable = "review_decisions"
)

func (p *PgSQL) StoreReviewDecision(ctx context.Context,
	decision domain.ReviewDecision) (*domain.ReviewDecision, error) {
	row := PgReviewDecision{
		ScanID:   uuid.UUID(decision.ScanID),
		Verdict:  string(decision.Verdict),
		Notes:    decision.Notes,
		Reviewer: decision.Reviewer,
	}

	var stored PgReviewDecision
	if _, err := p.Builder.Insert(reviewDecisionsTable).
		Rows(row).
		Returning(&PgReviewDecision{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store review decision into pg: %w", wrapUniqueViolation(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ReviewDecisionByScanID(ctx context.Context, scanID domain.ScanID) (*domain.ReviewDecision, error) {
	var row PgReviewDecision
	found, err := p.Builder.From(reviewDecisionsTable).
		Where(goqu.I("scan_id").Eq(uuid.UUID(scanID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get review decision from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
