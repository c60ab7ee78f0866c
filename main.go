// File: villabook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"villabook/config"
	"villabook/cron"
	"villabook/database"
	bookingRepoPkg "villabook/database/repository/booking"
	payoutRepoPkg "villabook/database/repository/payout"
	reviewRepoPkg "villabook/database/repository/review"
	userRepoPkg "villabook/database/repository/user"
	villaRepoPkg "villabook/database/repository/villa"
	"villabook/handlers"
	"villabook/middleware"
	"villabook/routes"
	"villabook/services/booking"
	"villabook/services/host"
	"villabook/services/notification"
	"villabook/services/payout"
	"villabook/services/villa"
	"villabook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	villaRepo := villaRepoPkg.NewMongoVillaRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	payoutRepo := payoutRepoPkg.NewMongoPayoutRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	notificationService := notification.NewDefaultNotificationService()

	hostService := &host.DefaultHostService{
		BookingRepo: bookingRepo,
		PayoutRepo:  payoutRepo,
		VillaRepo:   villaRepo,
		ReviewRepo:  reviewRepo,
		Cache:       utils.GetStatsCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.StatsCacheTTL) * time.Second,
		Logger:      logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		ReviewRepo:      reviewRepo,
		UserRepo:        userRepo,
		NotificationSvc: notificationService,
		Stats:           hostService,
		Logger:          logger,
	}

	villaService := &villa.DefaultVillaService{
		Repo:   villaRepo,
		Logger: logger,
	}

	payoutQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPayoutQueueDB,
	})
	defer payoutQueue.Close()

	payoutService := &payout.DefaultPayoutService{
		Repo:   payoutRepo,
		Queue:  payoutQueue,
		Logger: logger,
	}

	// Background payout settlement worker.
	cron.InitPayoutWorker(payoutRepo, notificationService, hostService.InvalidateStats)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	hostHandler := handlers.NewHostHandler(hostService, payoutService, logger)
	villaHandler := handlers.NewVillaHandler(villaService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(userRepo, villaRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		GetBookingDetail: bookingHandler.GetBookingDetail,
		ListBookings:     bookingHandler.ListBookings,
		ApplyTransition:  bookingHandler.ApplyTransition,
		SubmitReview:     bookingHandler.SubmitReview,

		// Host dashboard endpoints.
		GetDashboard:   hostHandler.GetDashboard,
		ListPayouts:    hostHandler.ListPayouts,
		SchedulePayout: hostHandler.SchedulePayout,

		// Villa endpoints.
		CreateVilla:         villaHandler.CreateVilla,
		UpdateVilla:         villaHandler.UpdateVilla,
		DeleteVilla:         villaHandler.DeleteVilla,
		SetVillaStatus:      villaHandler.SetVillaStatus,
		GetVilla:            villaHandler.GetVilla,
		ListVillas:          villaHandler.ListVillas,
		ListPublishedVillas: villaHandler.ListPublishedVillas,

		// Notification endpoints.
		ListNotifications:    notificationHandler.ListNotifications,
		MarkNotificationRead: notificationHandler.MarkNotificationRead,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks surfaced on /health.
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetStatsCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
