package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mike4422/ApexGlobalEarnings-sub001/internal/errors"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/settlement"
)

// SettlementHandler exposes the settlement sweep over HTTP for schedulers
// that trigger jobs with a webhook instead of running the sweep binary.
type SettlementHandler struct {
	sweeper *settlement.Sweeper
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(sweeper *settlement.Sweeper) *SettlementHandler {
	return &SettlementHandler{sweeper: sweeper}
}

// TriggerSweep runs a settlement sweep synchronously
// @Summary     Trigger a settlement sweep
// @Description Run one settlement sweep over all active investments. Safe to call repeatedly. Requires the sweep API key.
// @Tags        settlement
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "Sweep API key"
// @Success     200 {object} settlement.RunResult "Sweep completed"
// @Failure     401 {object} ErrorResponse "Missing or invalid API key"
// @Failure     500 {object} ErrorResponse "Sweep failed to start"
// @Router      /internal/settlement/sweep [post]
func (h *SettlementHandler) TriggerSweep(c *gin.Context) {
	result, err := h.sweeper.Run(c.Request.Context())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
