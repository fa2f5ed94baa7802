package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/pagination"
)

// walletService handles deposits and ledger history.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// RequestDeposit records a pending deposit. The balance is untouched until
// an admin confirms it.
func (s *walletService) RequestDeposit(userID string, amountCents int64, method, txHash string) (*models.Deposit, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Deposit amount must be positive")
	}

	deposit := &models.Deposit{
		UserID:      userID,
		AmountCents: amountCents,
		Method:      method,
		TxHash:      txHash,
		Status:      models.DepositStatusPending,
	}
	if err := s.db.Create(deposit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return deposit, nil
}

// ConfirmDeposit credits the user's balance for a pending deposit. The
// status transition, the balance credit, and the DEPOSIT ledger row commit
// together; confirming twice is rejected by the status precondition.
func (s *walletService) ConfirmDeposit(depositID string) (*models.Deposit, error) {
	deposit, err := s.getDeposit(depositID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Deposit{}).
			Where("id = ? AND status = ?", depositID, models.DepositStatusPending).
			Updates(map[string]interface{}{
				"status":       models.DepositStatusConfirmed,
				"confirmed_at": now,
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrDepositNotPending
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", deposit.UserID).
			UpdateColumn("balance_cents", gorm.Expr("balance_cents + ?", deposit.AmountCents)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.Transaction{
			UserID:      deposit.UserID,
			Type:        models.TransactionTypeDeposit,
			AmountCents: deposit.AmountCents,
			Description: "Deposit via " + deposit.Method,
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

	deposit.Status = models.DepositStatusConfirmed
	deposit.ConfirmedAt = &now
	return deposit, nil
}

// RejectDeposit marks a pending deposit rejected. No balance was ever
// credited, so there is nothing to reverse.
func (s *walletService) RejectDeposit(depositID string) (*models.Deposit, error) {
	deposit, err := s.getDeposit(depositID)
	if err != nil {
		return nil, err
	}

	res := s.db.Model(&models.Deposit{}).
		Where("id = ? AND status = ?", depositID, models.DepositStatusPending).
		Update("status", models.DepositStatusRejected)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrDepositNotPending
	}

	deposit.Status = models.DepositStatusRejected
	return deposit, nil
}

// GetPendingDeposits returns pending deposits for admin review, oldest first.
func (s *walletService) GetPendingDeposits(page pagination.PageRequest) (*pagination.PageResponse[models.Deposit], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Deposit{}).Where("status = ?", models.DepositStatusPending)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var deposits []models.Deposit
	if err := s.db.Where("status = ?", models.DepositStatusPending).
		Order("created_at ASC").
		Scopes(pagination.Paginate(page)).Find(&deposits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(deposits, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetUserTransactions returns the user's ledger history, newest first,
// optionally filtered by entry type.
func (s *walletService) GetUserTransactions(userID string, page pagination.PageRequest, txType *models.TransactionType) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if txType != nil {
		query = query.Where("type = ?", *txType)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := query.Order("date DESC").
		Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *walletService) getDeposit(depositID string) (*models.Deposit, error) {
	var deposit models.Deposit
	if err := s.db.First(&deposit, "id = ?", depositID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepositNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deposit, nil
}
