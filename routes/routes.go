package routes

import (
	"net/http"
	"time"

	"villabook/handlers"
	"villabook/middleware"
	"villabook/models"
	"villabook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListBookings)
		api.GET("/:id", hb.GetBookingDetail)
		api.POST("/:id/transition", hb.ApplyTransition)
		api.POST("/:id/reviews", hb.SubmitReview)
	}
}

// RegisterHostRoutes sets up the host dashboard endpoints.
func RegisterHostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hosts")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.Use(middleware.RequireRole(models.RoleHost))
		api.GET("/dashboard", hb.GetDashboard)
		api.GET("/payouts", hb.ListPayouts)
		api.POST("/payouts", hb.SchedulePayout)
	}
}

// RegisterVillaRoutes sets up listing management and the public
// published-listing view.
func RegisterVillaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/villas")
	{
		// Public endpoints.
		api.GET("/published", hb.ListPublishedVillas)
		api.GET("/:id", hb.GetVilla)

		// Host endpoints.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.Use(middleware.RequireRole(models.RoleHost))
		protected.GET("", hb.ListVillas)
		protected.POST("", hb.CreateVilla)
		protected.PUT("/:id", hb.UpdateVilla)
		protected.DELETE("/:id", hb.DeleteVilla)
		protected.PUT("/:id/status", hb.SetVillaStatus)
	}
}

// RegisterNotificationRoutes sets up the inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotifications)
		api.PUT("/:id/read", hb.MarkNotificationRead)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware())
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		adminGroup.GET("/villas", hb.AdminHandler.GetAllVillasHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterHostRoutes(r, hb)
	RegisterVillaRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
