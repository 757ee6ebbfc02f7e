package handlers

import (
	"net/http"

	"triptailor/services/stats"
	"triptailor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes per-collection totals.
type StatsHandler struct {
	Service stats.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc stats.StatsService) *StatsHandler {
	return &StatsHandler{Service: svc}
}

// TotalsHandler handles GET /total.
func (h *StatsHandler) TotalsHandler(c *gin.Context) {
	totals, err := h.Service.Totals()
	if err != nil {
		utils.GetLogger().Error("Failed to compute totals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}
