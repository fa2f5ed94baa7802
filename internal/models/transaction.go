package models

import "time"

// TransactionType represents the type of ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeInvestment TransactionType = "INVESTMENT"
	TransactionTypeSettlement TransactionType = "SETTLEMENT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeReferral   TransactionType = "REFERRAL"
)

// Transaction is an append-only ledger entry recording a single balance
// mutation. AmountCents is signed: credits are positive, debits negative.
// Every balance change commits in the same storage transaction as its
// ledger row.
type Transaction struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         TransactionType `gorm:"type:varchar(16);not null;index" json:"type"`
	AmountCents  int64           `gorm:"type:bigint;not null" json:"amount_cents"`
	Description  string          `gorm:"size:255" json:"description"`
	Date         time.Time       `gorm:"not null" json:"date"`
	InvestmentID *string         `gorm:"type:uuid;index" json:"investment_id,omitempty"`

	// For referral commissions: which level of the chain earned this.
	ReferralLevel int `gorm:"default:0" json:"referral_level,omitempty"`

	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Investment *Investment `gorm:"foreignKey:InvestmentID" json:"-"`
}
