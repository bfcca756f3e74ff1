package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hometown/catalog"
	"hometown/config"
	"hometown/handlers"
	"hometown/middleware"
	"hometown/routes"
	"hometown/services/booking"
	"hometown/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	cat, err := catalog.Load(config.AppConfig.CatalogPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load service catalog: %v", err)
	}

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	submissionClient := booking.NewSubmissionClient(config.AppConfig.BookingAPIURL, logger)
	formService := &booking.DefaultFormService{
		Store:     sessionStore,
		Catalog:   cat,
		Submitter: submissionClient,
	}

	bookingHandler := handlers.NewBookingHandler(formService, logger)
	catalogHandler := handlers.NewCatalogHandler(cat)

	routes.RegisterRoutes(router, bookingHandler, catalogHandler)

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
