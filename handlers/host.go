package handlers

import (
	"net/http"
	"time"

	"villabook/middleware"
	"villabook/services/host"
	"villabook/services/payout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HostHandler exposes the host dashboard and payout history.
type HostHandler struct {
	Service   host.HostService
	PayoutSvc payout.PayoutService
	Logger    *zap.Logger
}

func NewHostHandler(svc host.HostService, payoutSvc payout.PayoutService, logger *zap.Logger) *HostHandler {
	return &HostHandler{Service: svc, PayoutSvc: payoutSvc, Logger: logger}
}

// GetDashboard returns the host's aggregated stats.
func (h *HostHandler) GetDashboard(c *gin.Context) {
	viewerID := c.GetString(middleware.CtxViewerID)
	stats, err := h.Service.GetDashboard(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute dashboard", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListPayouts returns the host's payout history.
func (h *HostHandler) ListPayouts(c *gin.Context) {
	viewerID := c.GetString(middleware.CtxViewerID)
	payouts, err := h.Service.ListPayouts(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payouts", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// SchedulePayout records a pending payout for the host and enqueues
// its simulated settlement.
func (h *HostHandler) SchedulePayout(c *gin.Context) {
	var input struct {
		Amount     float64   `json:"amount" binding:"required"`
		Method     string    `json:"method" binding:"required"`
		PayoutDate time.Time `json:"payout_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	viewerID := c.GetString(middleware.CtxViewerID)
	p, err := h.PayoutSvc.Schedule(c.Request.Context(), viewerID, input.Amount, input.Method, input.PayoutDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule payout", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payout": p})
}
