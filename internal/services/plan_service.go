package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
)

// planService handles plan-related business logic.
type planService struct {
	db *gorm.DB
}

// NewPlanService creates a new PlanServicer.
func NewPlanService(db *gorm.DB) PlanServicer {
	return &planService{db: db}
}

// validateTerms enforces the plan invariants shared by create and update.
func validateTerms(minAmountCents, maxAmountCents, dailyRoiBps int64, durationDays int) error {
	if minAmountCents <= 0 || maxAmountCents <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount bounds must be positive")
	}
	if minAmountCents > maxAmountCents {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Minimum amount exceeds maximum")
	}
	if dailyRoiBps < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Daily ROI must not be negative")
	}
	if durationDays < 1 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Duration must be at least one day")
	}
	return nil
}

// CreatePlan creates a new investment plan.
func (s *planService) CreatePlan(slug, name string, minAmountCents, maxAmountCents, dailyRoiBps int64, durationDays int) (*models.Plan, error) {
	if err := validateTerms(minAmountCents, maxAmountCents, dailyRoiBps, durationDays); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Plan{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateSlug
	}

	plan := &models.Plan{
		Slug:           slug,
		Name:           name,
		MinAmountCents: minAmountCents,
		MaxAmountCents: maxAmountCents,
		DailyRoiBps:    dailyRoiBps,
		DurationDays:   durationDays,
		IsActive:       true,
	}
	if err := s.db.Create(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plan, nil
}

// UpdatePlan applies the non-nil fields of update to an existing plan.
// Existing investments are unaffected: they carry their own term snapshot.
func (s *planService) UpdatePlan(planID string, update PlanUpdate) (*models.Plan, error) {
	plan, err := s.GetPlanByID(planID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		plan.Name = *update.Name
	}
	if update.MinAmountCents != nil {
		plan.MinAmountCents = *update.MinAmountCents
	}
	if update.MaxAmountCents != nil {
		plan.MaxAmountCents = *update.MaxAmountCents
	}
	if update.DailyRoiBps != nil {
		plan.DailyRoiBps = *update.DailyRoiBps
	}
	if update.DurationDays != nil {
		plan.DurationDays = *update.DurationDays
	}
	if update.IsActive != nil {
		plan.IsActive = *update.IsActive
	}

	if err := validateTerms(plan.MinAmountCents, plan.MaxAmountCents, plan.DailyRoiBps, plan.DurationDays); err != nil {
		return nil, err
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plan, nil
}

// GetActivePlans returns all plans currently accepting investments.
func (s *planService) GetActivePlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Where("is_active = ?", true).Order("min_amount_cents ASC").Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// GetPlanByID retrieves a plan by ID.
func (s *planService) GetPlanByID(planID string) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// GetPlanBySlug retrieves a plan by its slug.
func (s *planService) GetPlanBySlug(slug string) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}
