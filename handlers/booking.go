package handlers

import (
	"net/http"

	"villabook/middleware"
	"villabook/models"
	"villabook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// lifecycleStatus maps engine error codes to HTTP statuses.
func lifecycleStatus(err error) int {
	switch booking.ErrCode(err) {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeNotAllowed, booking.CodeNotEligible:
		return http.StatusForbidden
	case booking.CodeInvalidTransition, booking.CodeConflict:
		return http.StatusConflict
	case booking.CodeMissingReason, booking.CodeInvalidRating, booking.CodeTextTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func viewer(c *gin.Context) (string, string) {
	return c.GetString(middleware.CtxViewerID), c.GetString(middleware.CtxViewerRole)
}

// GetBookingDetail returns a booking with the viewer's permitted actions.
func (h *BookingHandler) GetBookingDetail(c *gin.Context) {
	viewerID, viewerRole := viewer(c)
	detail, err := h.Service.GetBookingDetail(c.Request.Context(), c.Param("id"), viewerID, viewerRole)
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListBookings returns the viewer's bookings, scoped by role.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	viewerID, viewerRole := viewer(c)

	var (
		bookings []models.Booking
		err      error
	)
	if viewerRole == models.RoleHost {
		bookings, err = h.Service.ListForHost(c.Request.Context(), viewerID)
	} else {
		bookings, err = h.Service.ListForGuest(c.Request.Context(), viewerID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ApplyTransition moves a booking to a new status on the viewer's behalf.
func (h *BookingHandler) ApplyTransition(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	viewerID, viewerRole := viewer(c)
	updated, err := h.Service.ApplyTransition(c.Request.Context(), c.Param("id"), viewerID, viewerRole, input.Status, input.Reason)
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// SubmitReview creates a review for a completed stay.
func (h *BookingHandler) SubmitReview(c *gin.Context) {
	var input struct {
		Rating int     `json:"rating" binding:"required"`
		Text   *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	viewerID, viewerRole := viewer(c)
	review, err := h.Service.SubmitReview(c.Request.Context(), c.Param("id"), viewerID, viewerRole, input.Rating, input.Text)
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}
