package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/pagination"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/uuid"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db              *gorm.DB
	planService     PlanServicer
	referralService ReferralServicer
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB, planService PlanServicer, referralService ReferralServicer) InvestmentServicer {
	return &investmentService{db: db, planService: planService, referralService: referralService}
}

// CreateInvestment allocates capital from the user's balance into a plan.
// The plan's terms are copied onto the investment row at this moment and the
// end date is fixed immediately; the balance debit, the ledger entry, the
// investment row, and any referral commissions commit in one transaction.
func (s *investmentService) CreateInvestment(userID, planID string, amountCents int64) (*models.Investment, error) {
	plan, err := s.planService.GetPlanByID(planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, apperrors.ErrPlanInactive
	}
	if amountCents < plan.MinAmountCents || amountCents > plan.MaxAmountCents {
		return nil, apperrors.ErrAmountOutOfRange
	}

	var investor models.User
	if err := s.db.First(&investor, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	endDate := now.AddDate(0, 0, plan.DurationDays)
	investment := &models.Investment{
		UserID:       userID,
		PlanID:       plan.ID,
		OrderRef:     uuid.New(),
		AmountCents:  amountCents,
		DailyRoiBps:  plan.DailyRoiBps,
		DurationDays: plan.DurationDays,
		StartDate:    now,
		EndDate:      &endDate,
		Status:       models.InvestmentStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Guarded debit: refuses to overdraw without a read-then-write race.
		res := tx.Model(&models.User{}).
			Where("id = ? AND balance_cents >= ?", userID, amountCents).
			UpdateColumn("balance_cents", gorm.Expr("balance_cents - ?", amountCents))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInsufficientBalance
		}

		if txErr := tx.Create(investment).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		entry := &models.Transaction{
			UserID:       userID,
			Type:         models.TransactionTypeInvestment,
			AmountCents:  -amountCents,
			Description:  "Investment in plan " + plan.Slug,
			Date:         now,
			InvestmentID: &investment.ID,
		}
		if txErr := tx.Create(entry).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		return s.referralService.PayCommissions(tx, &investor, investment)
	})
	if err != nil {
		return nil, err
	}

	investment.Plan = *plan
	return investment, nil
}

// GetUserInvestments returns a paginated list of the user's investments,
// newest first.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := s.db.Preload("Plan").Where("user_id = ?", userID).
		Order("start_date DESC").
		Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvestmentByID returns an investment if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Preload("Plan").First(&investment, "id = ?", investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if investment.UserID != userID {
		return nil, apperrors.ErrInvestmentNotFound
	}

	return &investment, nil
}
