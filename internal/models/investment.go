package models

import "time"

// InvestmentStatus represents the lifecycle state of an investment.
// COMPLETED is terminal; an investment is never reopened or deleted.
type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "ACTIVE"
	InvestmentStatusCompleted InvestmentStatus = "COMPLETED"
)

// Investment is one user's capital allocation to a plan. The plan's economic
// terms (AmountCents bounds aside) are snapshotted onto the row at creation:
// DailyRoiBps and DurationDays here are the terms the investment was sold
// under, not a live reference into plans. Settlement and accrual read only
// the snapshot.
type Investment struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID   string `gorm:"type:uuid;not null;index" json:"plan_id"`
	OrderRef string `gorm:"size:36;uniqueIndex;not null" json:"order_ref"`

	// Snapshot of plan terms at creation time.
	AmountCents  int64 `gorm:"type:bigint;not null" json:"amount_cents"`
	DailyRoiBps  int64 `gorm:"type:bigint;not null" json:"daily_roi_bps"`
	DurationDays int   `gorm:"not null" json:"duration_days"`

	StartDate          time.Time        `gorm:"not null" json:"start_date"`
	EndDate            *time.Time       `json:"end_date,omitempty"`
	Status             InvestmentStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';index" json:"status"`
	AccruedReturnCents int64            `gorm:"type:bigint;not null;default:0" json:"accrued_return_cents"`
	LastRoiAccruedAt   *time.Time       `json:"last_roi_accrued_at,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Plan Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// DailyReturnCents is the floored once-per-day return for this investment,
// computed from the snapshotted terms. Truncation is deliberate: returns are
// never rounded up.
func (i *Investment) DailyReturnCents() int64 {
	return i.AmountCents * i.DailyRoiBps / 10000
}

// MaxReturnCents is the total return the investment can ever accrue.
func (i *Investment) MaxReturnCents() int64 {
	return i.DailyReturnCents() * int64(i.DurationDays)
}
