package services

import (
	"gorm.io/gorm"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName, referralCode string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// PlanUpdate holds optional fields for updating a plan. Nil fields are left
// unchanged. Edits never touch existing investments: their terms are
// snapshotted at creation.
type PlanUpdate struct {
	Name           *string
	MinAmountCents *int64
	MaxAmountCents *int64
	DailyRoiBps    *int64
	DurationDays   *int
	IsActive       *bool
}

// PlanServicer defines the contract for plan-related business logic.
type PlanServicer interface {
	CreatePlan(slug, name string, minAmountCents, maxAmountCents, dailyRoiBps int64, durationDays int) (*models.Plan, error)
	UpdatePlan(planID string, update PlanUpdate) (*models.Plan, error)
	GetActivePlans() ([]models.Plan, error)
	GetPlanByID(planID string) (*models.Plan, error)
	GetPlanBySlug(slug string) (*models.Plan, error)
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	CreateInvestment(userID, planID string, amountCents int64) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
}

// ReferralStats summarizes a user's referral earnings.
type ReferralStats struct {
	ReferralCode     string `json:"referral_code"`
	DirectReferrals  int64  `json:"direct_referrals"`
	Level1EarnedCents int64 `json:"level1_earned_cents"`
	Level2EarnedCents int64 `json:"level2_earned_cents"`
}

// ReferralServicer defines the contract for referral commission logic.
type ReferralServicer interface {
	// PayCommissions credits the two-level inviter chain for a new
	// investment. It must be called inside the same transaction that
	// creates the investment.
	PayCommissions(tx *gorm.DB, investor *models.User, investment *models.Investment) error
	GetStats(userID string) (*ReferralStats, error)
}

// WalletServicer defines the contract for deposits and ledger history.
type WalletServicer interface {
	RequestDeposit(userID string, amountCents int64, method, txHash string) (*models.Deposit, error)
	ConfirmDeposit(depositID string) (*models.Deposit, error)
	RejectDeposit(depositID string) (*models.Deposit, error)
	GetPendingDeposits(page pagination.PageRequest) (*pagination.PageResponse[models.Deposit], error)
	GetUserTransactions(userID string, page pagination.PageRequest, txType *models.TransactionType) (*pagination.PageResponse[models.Transaction], error)
}

// WithdrawalServicer defines the contract for withdrawal processing.
type WithdrawalServicer interface {
	RequestWithdrawal(userID string, amountCents int64, walletAddress string) (*models.Withdrawal, error)
	ApproveWithdrawal(withdrawalID, adminNote string) (*models.Withdrawal, error)
	RejectWithdrawal(withdrawalID, adminNote string) (*models.Withdrawal, error)
	GetUserWithdrawals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Withdrawal], error)
	GetPendingWithdrawals(page pagination.PageRequest) (*pagination.PageResponse[models.Withdrawal], error)
}
