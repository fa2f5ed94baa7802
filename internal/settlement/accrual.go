package settlement

import (
	"time"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
)

// Accrual describes the pending accrual update for an active investment:
// the new running total, the day boundary it was computed up to, and the
// delta relative to what is already stored.
type Accrual struct {
	AccruedReturnCents int64
	AccruedAt          time.Time
	DeltaCents         int64
}

// AccrueTo computes the return an active investment should have accrued as
// of now. Returns accrue once per whole elapsed day relative to StartDate;
// a partial day earns nothing until it completes. The total is capped at the
// investment's committed return, so accrual stops advancing at maturity.
//
// The second return value is false when there is nothing to apply, either
// because no new day boundary has passed or the cap was already reached.
func AccrueTo(inv *models.Investment, now time.Time) (Accrual, bool) {
	if inv.Status != models.InvestmentStatusActive || inv.DurationDays <= 0 {
		return Accrual{}, false
	}

	elapsed := now.Sub(inv.StartDate)
	if elapsed < 0 {
		return Accrual{}, false
	}

	days := int64(elapsed / (24 * time.Hour))
	if days > int64(inv.DurationDays) {
		days = int64(inv.DurationDays)
	}
	if days == 0 {
		return Accrual{}, false
	}

	target := inv.DailyReturnCents() * days
	if max := inv.MaxReturnCents(); target > max {
		target = max
	}

	delta := target - inv.AccruedReturnCents
	if delta <= 0 {
		return Accrual{}, false
	}

	return Accrual{
		AccruedReturnCents: target,
		AccruedAt:          inv.StartDate.Add(time.Duration(days) * 24 * time.Hour),
		DeltaCents:         delta,
	}, true
}
