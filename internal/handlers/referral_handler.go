package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/services"
)

// ReferralHandler handles referral program requests.
type ReferralHandler struct {
	referralService services.ReferralServicer
}

// NewReferralHandler creates a new ReferralHandler.
func NewReferralHandler(referralService services.ReferralServicer) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

// GetStats returns the authenticated user's referral summary
// @Summary     Get referral stats
// @Description Get the authenticated user's referral code, direct referral count, and commission totals per level
// @Tags        referrals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ReferralStats "Referral stats"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /referrals/stats [get]
func (h *ReferralHandler) GetStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.referralService.GetStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
