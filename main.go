// File: jiperaha/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jiperaha/config"
	"jiperaha/database"
	"jiperaha/database/repository"
	"jiperaha/handlers"
	"jiperaha/middleware"
	"jiperaha/routes"
	"jiperaha/services/booking"
	"jiperaha/services/validation"
	"jiperaha/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Storage slot.
	slots, err := repository.NewSlotRepoFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize %s storage: %v", config.AppConfig.StorageDriver, err)
	}

	// services.
	validator, err := validation.NewValidator(validation.Config{
		MinNameLength:   config.AppConfig.MinNameLength,
		MaxParticipants: config.AppConfig.MaxParticipants,
		Packages:        config.AppConfig.Packages,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	bookingService := booking.NewBookingService(
		slots,
		config.AppConfig.StorageKey,
		config.AppConfig.StorageTimeout,
		logger,
	)

	pageHandler := handlers.NewBookingHandler(bookingService, validator, config.AppConfig.ResortName)
	apiHandler := handlers.NewBookingAPIHandler(bookingService, validator, config.AppConfig.ResortName)
	handlerBundle := handlers.NewHandlerBundle(pageHandler, apiHandler)

	tmpl, err := handlers.LoadTemplates()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, config.AppConfig.StorageDriver, slots, config.AppConfig.HealthInterval)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting %s booking server on %s (storage: %s)...",
		config.AppConfig.ResortName, srv.Addr, config.AppConfig.StorageDriver)
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
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	if err := utils.CloseCache(); err != nil {
		logger.Sugar().Warnf("main: failed to close redis: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close mongo: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
