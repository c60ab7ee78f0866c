package handlers

import (
	"errors"
	"net/http"

	"villabook/middleware"
	"villabook/models"
	"villabook/services/villa"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VillaHandler exposes listing management for hosts and the public
// published-listing view.
type VillaHandler struct {
	Service villa.VillaService
	Logger  *zap.Logger
}

func NewVillaHandler(svc villa.VillaService, logger *zap.Logger) *VillaHandler {
	return &VillaHandler{Service: svc, Logger: logger}
}

func villaStatus(err error) int {
	switch {
	case errors.Is(err, villa.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, villa.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateVilla registers a new listing for the authenticated host.
func (h *VillaHandler) CreateVilla(c *gin.Context) {
	var input models.Villa
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	viewerID := c.GetString(middleware.CtxViewerID)
	created, err := h.Service.Create(c.Request.Context(), viewerID, input)
	if err != nil {
		c.JSON(villaStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"villa": created})
}

// UpdateVilla edits a listing owned by the authenticated host.
func (h *VillaHandler) UpdateVilla(c *gin.Context) {
	var input models.Villa
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	viewerID := c.GetString(middleware.CtxViewerID)
	updated, err := h.Service.Update(c.Request.Context(), viewerID, input)
	if err != nil {
		c.JSON(villaStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"villa": updated})
}

// DeleteVilla removes a listing owned by the authenticated host.
func (h *VillaHandler) DeleteVilla(c *gin.Context) {
	viewerID := c.GetString(middleware.CtxViewerID)
	if err := h.Service.Delete(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		c.JSON(villaStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// SetVillaStatus publishes or unpublishes a listing.
func (h *VillaHandler) SetVillaStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	viewerID := c.GetString(middleware.CtxViewerID)
	if err := h.Service.SetStatus(c.Request.Context(), viewerID, c.Param("id"), input.Status); err != nil {
		c.JSON(villaStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// GetVilla returns a single listing.
func (h *VillaHandler) GetVilla(c *gin.Context) {
	v, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(villaStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"villa": v})
}

// ListVillas returns the authenticated host's listings.
func (h *VillaHandler) ListVillas(c *gin.Context) {
	viewerID := c.GetString(middleware.CtxViewerID)
	villas, err := h.Service.ListForHost(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list villas", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"villas": villas})
}

// ListPublishedVillas returns all published listings.
func (h *VillaHandler) ListPublishedVillas(c *gin.Context) {
	villas, err := h.Service.ListPublished(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list villas", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"villas": villas})
}
