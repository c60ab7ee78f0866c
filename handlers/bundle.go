package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects all route handlers assembled in main.
type HandlerBundle struct {
	// Booking endpoints.
	GetBookingDetail gin.HandlerFunc
	ListBookings     gin.HandlerFunc
	ApplyTransition  gin.HandlerFunc
	SubmitReview     gin.HandlerFunc

	// Host dashboard endpoints.
	GetDashboard   gin.HandlerFunc
	ListPayouts    gin.HandlerFunc
	SchedulePayout gin.HandlerFunc

	// Villa endpoints.
	CreateVilla         gin.HandlerFunc
	UpdateVilla         gin.HandlerFunc
	DeleteVilla         gin.HandlerFunc
	SetVillaStatus      gin.HandlerFunc
	GetVilla            gin.HandlerFunc
	ListVillas          gin.HandlerFunc
	ListPublishedVillas gin.HandlerFunc

	// Notification endpoints.
	ListNotifications    gin.HandlerFunc
	MarkNotificationRead gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
