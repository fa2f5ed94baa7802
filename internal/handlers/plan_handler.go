package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/services"
)

// PlanHandler handles investment plan requests.
type PlanHandler struct {
	planService services.PlanServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// CreatePlanRequest represents the request payload for creating a plan
type CreatePlanRequest struct {
	Slug           string `json:"slug" binding:"required,plan_slug,max=64"`
	Name           string `json:"name" binding:"required,max=100"`
	MinAmountCents int64  `json:"min_amount_cents" binding:"required,gt=0"`
	MaxAmountCents int64  `json:"max_amount_cents" binding:"required,gt=0"`
	DailyRoiBps    int64  `json:"daily_roi_bps" binding:"min=0"`
	DurationDays   int    `json:"duration_days" binding:"required,min=1"`
}

// UpdatePlanRequest represents the request payload for updating a plan.
// All fields are optional; omitted fields keep their current value.
type UpdatePlanRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	MinAmountCents *int64  `json:"min_amount_cents" binding:"omitempty,gt=0"`
	MaxAmountCents *int64  `json:"max_amount_cents" binding:"omitempty,gt=0"`
	DailyRoiBps    *int64  `json:"daily_roi_bps" binding:"omitempty,min=0"`
	DurationDays   *int    `json:"duration_days" binding:"omitempty,min=1"`
	IsActive       *bool   `json:"is_active"`
}

// GetActivePlans lists plans open for new investments
// @Summary     List active plans
// @Description Get all plans currently accepting new investments
// @Tags        plans
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Plan "Active plans"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [get]
func (h *PlanHandler) GetActivePlans(c *gin.Context) {
	plans, err := h.planService.GetActivePlans()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// GetPlanBySlug returns a single plan by its slug
// @Summary     Get plan by slug
// @Description Get a single plan by its URL slug
// @Tags        plans
// @Accept      json
// @Produce     json
// @Param       slug path string true "Plan slug"
// @Success     200 {object} models.Plan "Plan"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{slug} [get]
func (h *PlanHandler) GetPlanBySlug(c *gin.Context) {
	plan, err := h.planService.GetPlanBySlug(c.Param("slug"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// CreatePlan creates a new investment plan
// @Summary     Create a plan
// @Description Create a new investment plan (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlanRequest true "Plan details"
// @Success     201 {object} models.Plan "Plan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     409 {object} ErrorResponse "Slug already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.CreatePlan(req.Slug, req.Name, req.MinAmountCents, req.MaxAmountCents, req.DailyRoiBps, req.DurationDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// UpdatePlan updates an existing plan
// @Summary     Update a plan
// @Description Update an existing plan's terms (admin only). Existing investments keep their snapshotted terms.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Plan ID"
// @Param       request body UpdatePlanRequest true "Fields to update"
// @Success     200 {object} models.Plan "Plan updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/plans/{id} [patch]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.UpdatePlan(c.Param("id"), services.PlanUpdate{
		Name:           req.Name,
		MinAmountCents: req.MinAmountCents,
		MaxAmountCents: req.MaxAmountCents,
		DailyRoiBps:    req.DailyRoiBps,
		DurationDays:   req.DurationDays,
		IsActive:       req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
