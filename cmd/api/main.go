package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-lost-found/config"
	_ "campus-lost-found/docs" // Swagger docs
	"campus-lost-found/internal/httpserver"
	"campus-lost-found/internal/item/claim"
	itemHTTP "campus-lost-found/internal/item/delivery/http"
	"campus-lost-found/internal/item/normalizer"
	"campus-lost-found/internal/item/recency"
	"campus-lost-found/internal/item/repository/backend"
	"campus-lost-found/internal/item/repository/snapshot"
	"campus-lost-found/internal/item/usecase"
	"campus-lost-found/internal/middleware"
	"campus-lost-found/pkg/imaging"
	"campus-lost-found/pkg/log"
)

// @title       Campus Lost & Found API
// @description Backend-for-frontend over the campus lost & found item service.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Lost & Found API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Item domain
	classifier, err := recency.NewClassifier(cfg.Recency.Timezone, cfg.Recency.ThresholdHours)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Recency.Timezone, err)
		classifier, _ = recency.NewClassifier("UTC", cfg.Recency.ThresholdHours)
	}

	backendClient := backend.NewClient(backend.Config{
		BaseURL:       cfg.Backend.URL,
		Timeout:       cfg.Backend.Timeout,
		RetryAttempts: cfg.Backend.RetryAttempts,
		RetryDelay:    cfg.Backend.RetryDelay,
		Breaker: backend.BreakerConfig{
			MaxRequests:      cfg.Backend.Breaker.MaxRequests,
			Interval:         cfg.Backend.Breaker.Interval,
			Timeout:          cfg.Backend.Breaker.Timeout,
			FailureThreshold: cfg.Backend.Breaker.FailureThreshold,
		},
	}, logger)
	itemRepo := backend.New(backendClient, normalizer.New(cfg.Backend.URL, cfg.Image.Placeholder), logger)

	snapshots, closeSnapshots, err := snapshot.New(ctx, snapshot.Config{
		Driver:        cfg.Snapshot.Driver,
		RedisAddr:     cfg.Snapshot.RedisAddr,
		RedisPassword: cfg.Snapshot.RedisPassword,
		RedisDB:       cfg.Snapshot.RedisDB,
		Key:           cfg.Snapshot.Key,
		TTL:           cfg.Snapshot.TTL,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize snapshot store: ", err)
		return
	}
	defer func() {
		if cerr := closeSnapshots(); cerr != nil {
			logger.Warnf(ctx, "Failed to close snapshot store: %v", cerr)
		}
	}()

	itemUC := usecase.New(
		logger,
		itemRepo,
		snapshots,
		claim.NewRegistry(cfg.Claim.RegistrySize, cfg.Claim.RegistryTTL),
		classifier,
		imaging.New(cfg.Image.MaxDimension),
	)
	itemHandler := itemHTTP.New(logger, itemUC)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Claim.RateLimitPerMin}),
		ItemHandler: itemHandler,
		Ready:       backendClient.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
