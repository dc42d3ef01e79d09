// File: roomify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomify/config"
	"roomify/database/kv"
	"roomify/handlers"
	"roomify/middleware"
	"roomify/models"
	"roomify/routes"
	"roomify/services/booking"
	"roomify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := kv.New()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage backend: %v", err)
	}
	logger.Sugar().Infof("Using %s storage backend", store.Driver())

	rooms := models.DefaultRooms()
	slots := models.DefaultSlots()

	bookingService := &booking.DefaultBookingService{
		KV:    store,
		Rooms: rooms,
		Slots: slots,
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := bookingService.Initialize(initCtx); err != nil {
		cancel()
		logger.Sugar().Fatalf("main: failed to initialize booking store: %v", err)
	}
	cancel()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	bookingHandler := handlers.NewBookingHandler(bookingService, slots, logger)
	roomHandler := handlers.NewRoomHandler(rooms, slots)

	routes.RegisterRoutes(router, roomHandler, bookingHandler)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
