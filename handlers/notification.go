package handlers

import (
	"net/http"

	"villabook/middleware"
	"villabook/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the viewer's inbox.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// ListNotifications returns the viewer's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	viewerID := c.GetString(middleware.CtxViewerID)
	notifs, err := h.Service.ListForUser(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// MarkNotificationRead marks one of the viewer's notifications as read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	viewerID := c.GetString(middleware.CtxViewerID)
	if err := h.Service.MarkRead(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
