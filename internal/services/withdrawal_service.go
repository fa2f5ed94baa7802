package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/pagination"
)

// withdrawalService handles withdrawal processing.
type withdrawalService struct {
	db *gorm.DB
}

// NewWithdrawalService creates a new WithdrawalServicer.
func NewWithdrawalService(db *gorm.DB) WithdrawalServicer {
	return &withdrawalService{db: db}
}

// RequestWithdrawal reserves funds for a payout: the balance is debited
// immediately and the request enters PENDING state, in one transaction.
func (s *withdrawalService) RequestWithdrawal(userID string, amountCents int64, walletAddress string) (*models.Withdrawal, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Withdrawal amount must be positive")
	}
	if walletAddress == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Wallet address is required")
	}

	now := time.Now()
	withdrawal := &models.Withdrawal{
		UserID:        userID,
		AmountCents:   amountCents,
		WalletAddress: walletAddress,
		Status:        models.WithdrawalStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND balance_cents >= ?", userID, amountCents).
			UpdateColumn("balance_cents", gorm.Expr("balance_cents - ?", amountCents))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInsufficientBalance
		}

		if txErr := tx.Create(withdrawal).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		entry := &models.Transaction{
			UserID:      userID,
			Type:        models.TransactionTypeWithdrawal,
			AmountCents: -amountCents,
			Description: "Withdrawal request",
			Date:        now,
		}
		if txErr := tx.Create(entry).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return withdrawal, nil
}

// ApproveWithdrawal marks a pending withdrawal paid out. The funds were
// already reserved at request time, so only the status advances.
func (s *withdrawalService) ApproveWithdrawal(withdrawalID, adminNote string) (*models.Withdrawal, error) {
	withdrawal, err := s.getWithdrawal(withdrawalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := s.db.Model(&models.Withdrawal{}).
		Where("id = ? AND status = ?", withdrawalID, models.WithdrawalStatusPending).
		Updates(map[string]interface{}{
			"status":       models.WithdrawalStatusApproved,
			"processed_at": now,
			"admin_note":   adminNote,
		})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrWithdrawalNotPending
	}

	withdrawal.Status = models.WithdrawalStatusApproved
	withdrawal.ProcessedAt = &now
	withdrawal.AdminNote = adminNote
	return withdrawal, nil
}

// RejectWithdrawal refunds a pending withdrawal: the status transition, the
// balance refund, and its ledger row commit together.
func (s *withdrawalService) RejectWithdrawal(withdrawalID, adminNote string) (*models.Withdrawal, error) {
	withdrawal, err := s.getWithdrawal(withdrawalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Withdrawal{}).
			Where("id = ? AND status = ?", withdrawalID, models.WithdrawalStatusPending).
			Updates(map[string]interface{}{
				"status":       models.WithdrawalStatusRejected,
				"processed_at": now,
				"admin_note":   adminNote,
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrWithdrawalNotPending
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", withdrawal.UserID).
			UpdateColumn("balance_cents", gorm.Expr("balance_cents + ?", withdrawal.AmountCents)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.Transaction{
			UserID:      withdrawal.UserID,
			Type:        models.TransactionTypeWithdrawal,
			AmountCents: withdrawal.AmountCents,
			Description: "Withdrawal rejected, funds returned",
			Date:        now,
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	withdrawal.Status = models.WithdrawalStatusRejected
	withdrawal.ProcessedAt = &now
	withdrawal.AdminNote = adminNote
	return withdrawal, nil
}

// GetUserWithdrawals returns the user's withdrawal requests, newest first.
func (s *withdrawalService) GetUserWithdrawals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Withdrawal], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Withdrawal{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var withdrawals []models.Withdrawal
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&withdrawals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(withdrawals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPendingWithdrawals returns pending withdrawals for admin review, oldest first.
func (s *withdrawalService) GetPendingWithdrawals(page pagination.PageRequest) (*pagination.PageResponse[models.Withdrawal], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Withdrawal{}).Where("status = ?", models.WithdrawalStatusPending)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var withdrawals []models.Withdrawal
	if err := s.db.Where("status = ?", models.WithdrawalStatusPending).
		Order("created_at ASC").
		Scopes(pagination.Paginate(page)).Find(&withdrawals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(withdrawals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *withdrawalService) getWithdrawal(withdrawalID string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	if err := s.db.First(&withdrawal, "id = ?", withdrawalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWithdrawalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &withdrawal, nil
}
