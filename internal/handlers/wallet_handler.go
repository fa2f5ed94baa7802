package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/models"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/pagination"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/services"
)

// WalletHandler handles deposit and ledger history requests.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// RequestDepositRequest represents the request payload for declaring a deposit
type RequestDepositRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,deposit_method"`
	TxHash      string `json:"tx_hash" binding:"max=128"`
}

// RequestDeposit declares an incoming deposit for admin confirmation
// @Summary     Request a deposit
// @Description Declare an incoming deposit. The balance is only credited once an admin confirms it.
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RequestDepositRequest true "Deposit details"
// @Success     201 {object} models.Deposit "Deposit recorded as pending"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/deposits [post]
func (h *WalletHandler) RequestDeposit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RequestDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deposit, err := h.walletService.RequestDeposit(userID, req.AmountCents, req.Method, req.TxHash)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"deposit": deposit})
}

// ConfirmDeposit confirms a pending deposit and credits the balance
// @Summary     Confirm a deposit
// @Description Confirm a pending deposit, crediting the user's balance exactly once (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Deposit ID"
// @Success     200 {object} models.Deposit "Deposit confirmed"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     409 {object} ErrorResponse "Deposit already processed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/deposits/{id}/confirm [post]
func (h *WalletHandler) ConfirmDeposit(c *gin.Context) {
	deposit, err := h.walletService.ConfirmDeposit(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deposit": deposit})
}

// RejectDeposit rejects a pending deposit
// @Summary     Reject a deposit
// @Description Reject a pending deposit without touching the balance (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Deposit ID"
// @Success     200 {object} models.Deposit "Deposit rejected"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     409 {object} ErrorResponse "Deposit already processed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/deposits/{id}/reject [post]
func (h *WalletHandler) RejectDeposit(c *gin.Context) {
	deposit, err := h.walletService.RejectDeposit(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deposit": deposit})
}

// GetPendingDeposits lists deposits awaiting confirmation
// @Summary     List pending deposits
// @Description Get a paginated list of deposits awaiting confirmation (admin only)
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Deposit] "Paginated deposits"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/deposits [get]
func (h *WalletHandler) GetPendingDeposits(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.walletService.GetPendingDeposits(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactions lists the authenticated user's ledger entries
// @Summary     Get transaction history
// @Description Get a paginated list of the authenticated user's ledger entries, optionally filtered by type
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by type (DEPOSIT, INVESTMENT, SETTLEMENT, WITHDRAWAL, REFERRAL)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wallet/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
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

	var txType *models.TransactionType
	if raw := c.Query("type"); raw != "" {
		t := models.TransactionType(raw)
		switch t {
		case models.TransactionTypeDeposit, models.TransactionTypeInvestment,
			models.TransactionTypeSettlement, models.TransactionTypeWithdrawal,
			models.TransactionTypeReferral:
			txType = &t
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction type"))
			return
		}
	}

	result, err := h.walletService.GetUserTransactions(userID, page, txType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
