package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
)

// referralService handles referral commission logic.
type referralService struct {
	db        *gorm.DB
	level1Bps int64
	level2Bps int64
}

// NewReferralService creates a new ReferralServicer with the given
// commission rates in basis points.
func NewReferralService(db *gorm.DB, level1Bps, level2Bps int64) ReferralServicer {
	return &referralService{db: db, level1Bps: level1Bps, level2Bps: level2Bps}
}

// PayCommissions credits the investor's inviter (level 1) and the inviter's
// inviter (level 2) for a newly created investment. Commissions are floored,
// zero-cent commissions are dropped, and each credit writes its REFERRAL
// ledger row in the caller's transaction.
func (s *referralService) PayCommissions(tx *gorm.DB, investor *models.User, investment *models.Investment) error {
	rates := []int64{s.level1Bps, s.level2Bps}
	beneficiaryID := investor.ReferredByID

	for level := 1; level <= len(rates) && beneficiaryID != nil; level++ {
		commission := investment.AmountCents * rates[level-1] / 10000
		var beneficiary models.User
		if err := tx.First(&beneficiary, "id = ?", *beneficiaryID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if commission > 0 {
			if err := tx.Model(&models.User{}).
				Where("id = ?", beneficiary.ID).
				UpdateColumn("balance_cents", gorm.Expr("balance_cents + ?", commission)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			entry := &models.Transaction{
				UserID:        beneficiary.ID,
				Type:          models.TransactionTypeReferral,
				AmountCents:   commission,
				Description:   fmt.Sprintf("Level %d referral commission", level),
				Date:          investment.StartDate,
				InvestmentID:  &investment.ID,
				ReferralLevel: level,
			}
			if err := tx.Create(entry).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		beneficiaryID = beneficiary.ReferredByID
	}

	return nil
}

// GetStats summarizes a user's referral standing.
func (s *referralService) GetStats(userID string) (*ReferralStats, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	stats := &ReferralStats{ReferralCode: user.ReferralCode}

	if err := s.db.Model(&models.User{}).
		Where("referred_by_id = ?", userID).
		Count(&stats.DirectReferrals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type levelSum struct {
		ReferralLevel int
		Total         int64
	}
	var sums []levelSum
	if err := s.db.Model(&models.Transaction{}).
		Select("referral_level, COALESCE(SUM(amount_cents), 0) AS total").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeReferral).
		Group("referral_level").
		Scan(&sums).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, s := range sums {
		switch s.ReferralLevel {
		case 1:
			stats.Level1EarnedCents = s.Total
		case 2:
			stats.Level2EarnedCents = s.Total
		}
	}

	return stats, nil
}
