package models

import "time"

// WithdrawalStatus represents the processing state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved WithdrawalStatus = "APPROVED"
	WithdrawalStatusRejected WithdrawalStatus = "REJECTED"
)

// Withdrawal is a user's request to pay out part of their balance. The amount
// is debited when the request is created (reserving the funds); a rejection
// refunds it atomically.
type Withdrawal struct {
	Base
	UserID        string           `gorm:"type:uuid;not null;index" json:"user_id"`
	AmountCents   int64            `gorm:"type:bigint;not null" json:"amount_cents"`
	WalletAddress string           `gorm:"size:128;not null" json:"wallet_address"`
	Status        WithdrawalStatus `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	ProcessedAt   *time.Time       `json:"processed_at,omitempty"`
	AdminNote     string           `gorm:"size:255" json:"admin_note,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
