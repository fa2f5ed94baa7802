package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/pagination"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/services"
)

// WithdrawalHandler handles withdrawal requests.
type WithdrawalHandler struct {
	withdrawalService services.WithdrawalServicer
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalService services.WithdrawalServicer) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

// RequestWithdrawalRequest represents the request payload for a withdrawal
type RequestWithdrawalRequest struct {
	AmountCents   int64  `json:"amount_cents" binding:"required,gt=0"`
	WalletAddress string `json:"wallet_address" binding:"required,min=8,max=128"`
}

// ProcessWithdrawalRequest represents the admin decision payload
type ProcessWithdrawalRequest struct {
	AdminNote string `json:"admin_note" binding:"max=500"`
}

// RequestWithdrawal reserves balance and queues a withdrawal
// @Summary     Request a withdrawal
// @Description Reserve the amount from the balance and queue a withdrawal for admin review
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RequestWithdrawalRequest true "Withdrawal details"
// @Success     201 {object} models.Withdrawal "Withdrawal queued"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/withdrawals [post]
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RequestWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	withdrawal, err := h.withdrawalService.RequestWithdrawal(userID, req.AmountCents, req.WalletAddress)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"withdrawal": withdrawal})
}

// GetUserWithdrawals lists the authenticated user's withdrawals
// @Summary     Get user withdrawals
// @Description Get a paginated list of the authenticated user's withdrawals, newest first
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Withdrawal] "Paginated withdrawals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/withdrawals [get]
func (h *WithdrawalHandler) GetUserWithdrawals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.withdrawalService.GetUserWithdrawals(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApproveWithdrawal marks a pending withdrawal as paid out
// @Summary     Approve a withdrawal
// @Description Approve a pending withdrawal. The reserved amount is not refunded. (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true  "Withdrawal ID"
// @Param       request body ProcessWithdrawalRequest false "Optional admin note"
// @Success     200 {object} models.Withdrawal "Withdrawal approved"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Withdrawal not found"
// @Failure     409 {object} ErrorResponse "Withdrawal already processed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) ApproveWithdrawal(c *gin.Context) {
	var req ProcessWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	withdrawal, err := h.withdrawalService.ApproveWithdrawal(c.Param("id"), req.AdminNote)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawal": withdrawal})
}

// RejectWithdrawal rejects a pending withdrawal and refunds the reservation
// @Summary     Reject a withdrawal
// @Description Reject a pending withdrawal, refunding the reserved amount (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true  "Withdrawal ID"
// @Param       request body ProcessWithdrawalRequest false "Optional admin note"
// @Success     200 {object} models.Withdrawal "Withdrawal rejected, amount refunded"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Withdrawal not found"
// @Failure     409 {object} ErrorResponse "Withdrawal already processed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) RejectWithdrawal(c *gin.Context) {
	var req ProcessWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	withdrawal, err := h.withdrawalService.RejectWithdrawal(c.Param("id"), req.AdminNote)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawal": withdrawal})
}

// GetPendingWithdrawals lists withdrawals awaiting review
// @Summary     List pending withdrawals
// @Description Get a paginated list of withdrawals awaiting review (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Withdrawal] "Paginated withdrawals"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/withdrawals [get]
func (h *WithdrawalHandler) GetPendingWithdrawals(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.withdrawalService.GetPendingWithdrawals(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
