package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduhub/config"
	"eduhub/internal/apis/routes"
	"eduhub/internal/di"
	"eduhub/internal/middleware"
	"eduhub/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load environment variables: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(config.Env.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Initialize dependencies
	di.Initialize(log)

	if config.Env.SetupOnStart {
		runSetup(log)
	}

	if config.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ginApp := gin.New()

	ginApp.Use(middleware.RequestIDMiddleware())
	ginApp.Use(middleware.CustomRecoveryMiddleware(log))
	ginApp.Use(middleware.RequestLogger(log))

	// CORS
	ginApp.Use(cors.New(cors.Config{
		AllowOrigins: []string{config.Env.CorsAllowedOrigin},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
		},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := routes.SetupDefaultRoutes(ginApp); err != nil {
		log.Fatal("Failed to setup routes", "error", err)
	}

	srv := &http.Server{
		Addr:    ":" + config.Env.Port,
		Handler: ginApp,
	}

	go func() {
		log.Info("Starting EduHub", "port", config.Env.Port, "environment", config.Env.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("EduHub failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("EduHub is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("EduHub forced to shutdown", "error", err)
	}
	if err := di.Close(ctx); err != nil {
		log.Error("Failed to close connections", "error", err)
	}

	log.Info("EduHub has been shut down")
}

func runSetup(log *logger.Logger) {
	setupService, err := di.GetSetupService()
	if err != nil {
		log.Fatal("Failed to resolve setup service", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, _, err := setupService.Run(ctx, config.Env.SeedOnSetup)
	if err != nil {
		log.Fatal("Setup on start failed", "error", err)
	}
	log.Info("Setup on start complete", "provisioned", result.Provisioned, "seeded", result.Seed != nil)
}
