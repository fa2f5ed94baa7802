package settlement

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/metrics"
)

// SweepError records a single investment that could not be processed.
type SweepError struct {
	InvestmentID string `json:"investment_id"`
	Err          error  `json:"-"`
	Message      string `json:"error"`
}

// RunResult contains the outcome of one sweep run.
type RunResult struct {
	Evaluated  int           `json:"evaluated"`
	Accrued    int           `json:"accrued"`
	Backfilled int           `json:"backfilled"`
	Settled    int           `json:"settled"`
	Skipped    int           `json:"skipped"`
	Errors     []SweepError  `json:"errors,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

// Sweeper walks every active investment, applies accrual, and settles the
// matured ones. Each investment is processed independently: one bad row is
// reported and skipped, never aborting the batch. Only failing to read the
// active set at all is fatal to the run.
type Sweeper struct {
	store Store
	log   *zap.SugaredLogger
	now   func() time.Time
}

// NewSweeper creates a Sweeper over the given store.
func NewSweeper(store Store, log *zap.SugaredLogger) *Sweeper {
	return &Sweeper{store: store, log: log, now: time.Now}
}

// WithClock overrides the sweeper's time source. Intended for tests.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// Run executes a single sweep. It is safe to interrupt via ctx between
// investments, and safe to re-run at any time: accrual is monotone,
// backfill writes are idempotent, and settlement refuses to pay twice.
func (s *Sweeper) Run(ctx context.Context) (*RunResult, error) {
	start := s.now()
	result := &RunResult{}

	investments, err := s.store.FindActiveInvestments(ctx)
	if err != nil {
		metrics.SweepRuns.WithLabelValues("failed").Inc()
		return nil, err
	}

	if len(investments) == 0 {
		s.log.Info("no active investments, nothing to do")
	}

	now := s.now()
	for i := range investments {
		if err := ctx.Err(); err != nil {
			result.Duration = s.now().Sub(start)
			metrics.SweepRuns.WithLabelValues("interrupted").Inc()
			return result, err
		}

		inv := &investments[i]
		result.Evaluated++

		if acc, ok := AccrueTo(inv, now); ok {
			if err := s.store.ApplyAccrual(ctx, inv.ID, acc.AccruedReturnCents, acc.AccruedAt); err != nil {
				s.recordError(result, inv.ID, err)
				continue
			}
			inv.AccruedReturnCents = acc.AccruedReturnCents
			inv.LastRoiAccruedAt = &acc.AccruedAt
			result.Accrued++
			metrics.SweepOutcomes.WithLabelValues("accrued").Inc()
		}

		outcome, err := Evaluate(inv, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrAlreadySettled) {
				// Settled by a concurrent run between read and evaluate.
				continue
			}
			result.Skipped++
			s.recordError(result, inv.ID, err)
			metrics.SweepOutcomes.WithLabelValues("skipped").Inc()
			continue
		}

		switch outcome.Action {
		case ActionBackfillOnly:
			if !outcome.NeedsBackfill {
				continue
			}
			if err := s.store.BackfillEndDate(ctx, inv.ID, outcome.EndDate); err != nil {
				s.recordError(result, inv.ID, err)
				continue
			}
			result.Backfilled++
			metrics.SweepOutcomes.WithLabelValues("backfilled").Inc()

		case ActionSettle:
			if outcome.NeedsBackfill {
				if err := s.store.BackfillEndDate(ctx, inv.ID, outcome.EndDate); err != nil {
					s.recordError(result, inv.ID, err)
					continue
				}
				result.Backfilled++
				metrics.SweepOutcomes.WithLabelValues("backfilled").Inc()
			}
			err := s.store.SettleInvestment(ctx, inv.ID, inv.UserID, outcome.CreditCents, outcome.EndDate, now)
			if errors.Is(err, apperrors.ErrAlreadySettled) {
				// A concurrent run won the race; the credit happened exactly once.
				continue
			}
			if err != nil {
				s.recordError(result, inv.ID, err)
				continue
			}
			result.Settled++
			metrics.SweepOutcomes.WithLabelValues("settled").Inc()
			metrics.SettledCents.Add(float64(outcome.CreditCents))
			s.log.Infow("investment settled",
				"investment_id", inv.ID,
				"user_id", inv.UserID,
				"credit_cents", outcome.CreditCents,
				"end_date", outcome.EndDate,
			)
		}
	}

	result.Duration = s.now().Sub(start)
	metrics.SweepRuns.WithLabelValues("ok").Inc()
	return result, nil
}

func (s *Sweeper) recordError(result *RunResult, investmentID string, err error) {
	result.Errors = append(result.Errors, SweepError{InvestmentID: investmentID, Err: err, Message: err.Error()})
	s.log.Warnw("sweep item failed",
		"investment_id", investmentID,
		"error", err.Error(),
	)
}
