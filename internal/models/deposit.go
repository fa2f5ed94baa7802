package models

import "time"

// DepositStatus represents the confirmation state of a deposit.
type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "PENDING"
	DepositStatusConfirmed DepositStatus = "CONFIRMED"
	DepositStatusRejected  DepositStatus = "REJECTED"
)

// Deposit is a user's funding request. The balance is credited only when an
// admin confirms the deposit, atomically with the DEPOSIT ledger entry.
type Deposit struct {
	Base
	UserID      string        `gorm:"type:uuid;not null;index" json:"user_id"`
	AmountCents int64         `gorm:"type:bigint;not null" json:"amount_cents"`
	Method      string        `gorm:"size:32;not null" json:"method"`
	TxHash      string        `gorm:"size:128" json:"tx_hash,omitempty"`
	Status      DepositStatus `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
