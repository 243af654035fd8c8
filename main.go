// File: roomly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	bookingRepoPkg "roomly/database/repository/booking"
	roomRepoPkg "roomly/database/repository/room"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/booking"
	"roomly/services/room"
	"roomly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()

	// background reminder worker.
	reminderScheduler := cron.NewScheduler()
	cron.InitReminderWorker()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Rooms:     roomRepo,
		Reminders: reminderScheduler,
	}
	roomService := &room.DefaultRoomService{
		Repo: roomRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	roomHandler := handlers.NewRoomHandler(roomService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, roomHandler)

	// Periodic health snapshots for /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
