package models

// Plan is a template describing an investment product: the amount bounds a
// new investment must fall within, the daily return in basis points, and the
// fixed duration in days. Plans are live rows that admins may edit; an
// investment copies the terms it was sold under at creation time, so editing
// or deactivating a plan never changes in-flight investments.
type Plan struct {
	Base
	Slug           string `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Name           string `gorm:"size:100;not null" json:"name"`
	MinAmountCents int64  `gorm:"type:bigint;not null" json:"min_amount_cents"`
	MaxAmountCents int64  `gorm:"type:bigint;not null" json:"max_amount_cents"`
	DailyRoiBps    int64  `gorm:"type:bigint;not null" json:"daily_roi_bps"`
	DurationDays   int    `gorm:"not null" json:"duration_days"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
}

// TotalReturnCents is the full committed return for an amount invested under
// this plan: the floored daily return times the plan duration.
func (p *Plan) TotalReturnCents(amountCents int64) int64 {
	return (amountCents * p.DailyRoiBps / 10000) * int64(p.DurationDays)
}
