package settlement

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
)

// Store is the persistence boundary the sweeper runs against. It is an
// interface so the sweeper can be exercised with a fake store in tests.
type Store interface {
	// FindActiveInvestments returns every investment still in ACTIVE state.
	FindActiveInvestments(ctx context.Context) ([]models.Investment, error)
	// ApplyAccrual advances an investment's running return to the given
	// total. It must never move the total backwards.
	ApplyAccrual(ctx context.Context, investmentID string, accruedReturnCents int64, accruedAt time.Time) error
	// BackfillEndDate persists an inferred end date on a row that has none.
	// It must never overwrite an end date that is already set.
	BackfillEndDate(ctx context.Context, investmentID string, endDate time.Time) error
	// SettleInvestment atomically credits the owner's balance and marks the
	// investment COMPLETED. Returns ErrAlreadySettled (a no-op, nothing
	// written) if the investment is no longer ACTIVE.
	SettleInvestment(ctx context.Context, investmentID, userID string, creditCents int64, endDate, now time.Time) error
}

// gormStore implements Store on a gorm database handle.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database handle.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindActiveInvestments(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.InvestmentStatusActive).
		Order("start_date ASC").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

func (s *gormStore) ApplyAccrual(ctx context.Context, investmentID string, accruedReturnCents int64, accruedAt time.Time) error {
	// The guard keeps the running total monotone even if two sweeps race.
	err := s.db.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ? AND status = ? AND accrued_return_cents < ?",
			investmentID, models.InvestmentStatusActive, accruedReturnCents).
		Updates(map[string]interface{}{
			"accrued_return_cents": accruedReturnCents,
			"last_roi_accrued_at":  accruedAt,
		}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *gormStore) BackfillEndDate(ctx context.Context, investmentID string, endDate time.Time) error {
	// end_date IS NULL makes the write idempotent: once set it is immutable.
	err := s.db.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ? AND end_date IS NULL", investmentID).
		Update("end_date", endDate).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *gormStore) SettleInvestment(ctx context.Context, investmentID, userID string, creditCents int64, endDate, now time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The status precondition is the idempotence backstop: the guarded
		// UPDATE both serializes concurrent sweeps on the row and refuses to
		// settle twice. Everything after it rolls back with it.
		res := tx.Model(&models.Investment{}).
			Where("id = ? AND status = ?", investmentID, models.InvestmentStatusActive).
			Updates(map[string]interface{}{
				"status":              models.InvestmentStatusCompleted,
				"end_date":            endDate,
				"last_roi_accrued_at": now,
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrAlreadySettled
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance_cents", gorm.Expr("balance_cents + ?", creditCents)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.Transaction{
			UserID:       userID,
			Type:         models.TransactionTypeSettlement,
			AmountCents:  creditCents,
			Description:  "Investment settlement payout",
			Date:         now,
			InvestmentID: &investmentID,
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return nil
	})
}
