// Package settlement implements the investment lifecycle core: daily return
// accrual, maturity evaluation, end-date backfill for legacy rows, and the
// atomic settlement that credits principal plus accrued return to the
// owner's balance exactly once.
package settlement

import (
	"fmt"
	"time"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
)

// Action classifies the result of evaluating an active investment.
type Action string

const (
	// ActionSkip means the investment could not be evaluated and must be
	// reported, never settled with a guessed end date.
	ActionSkip Action = "SKIP"
	// ActionBackfillOnly means the investment is still running; only its
	// missing end date (if any) should be persisted.
	ActionBackfillOnly Action = "BACKFILL_ONLY"
	// ActionSettle means the investment has matured and should be paid out.
	ActionSettle Action = "SETTLE"
)

// Outcome is the settlement instruction produced for one investment.
type Outcome struct {
	Action      Action
	EndDate     time.Time
	CreditCents int64
	// NeedsBackfill is set when EndDate was inferred from the snapshot and
	// is not yet persisted on the row.
	NeedsBackfill bool
}

// Evaluate classifies an active investment against the current time using
// its snapshotted plan terms. It never consults the live Plan row: the terms
// the investment was sold under are the only ones that count.
//
// A missing end date is inferred as StartDate + DurationDays. The inferred
// date must be persisted by the caller so it is never recomputed against
// terms that may have changed since.
func Evaluate(inv *models.Investment, now time.Time) (Outcome, error) {
	if inv.Status != models.InvestmentStatusActive {
		return Outcome{Action: ActionSkip}, apperrors.ErrAlreadySettled
	}

	if inv.DurationDays <= 0 {
		return Outcome{Action: ActionSkip}, apperrors.Wrap(apperrors.ErrInvalidPlanSnapshot,
			fmt.Errorf("investment %s: duration_days=%d", inv.ID, inv.DurationDays))
	}

	effectiveEnd := inv.StartDate.AddDate(0, 0, inv.DurationDays)
	needsBackfill := inv.EndDate == nil
	if inv.EndDate != nil {
		effectiveEnd = *inv.EndDate
	}

	// Matured at the boundary itself: now >= end, not strictly after.
	if now.Before(effectiveEnd) {
		return Outcome{
			Action:        ActionBackfillOnly,
			EndDate:       effectiveEnd,
			NeedsBackfill: needsBackfill,
		}, nil
	}

	return Outcome{
		Action:        ActionSettle,
		EndDate:       effectiveEnd,
		CreditCents:   inv.AmountCents + inv.AccruedReturnCents,
		NeedsBackfill: needsBackfill,
	}, nil
}
