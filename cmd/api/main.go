package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paypal-subscription-webhook/config"
	httpHandler "paypal-subscription-webhook/internal/adapter/http/handler"
	"paypal-subscription-webhook/internal/adapter/paypal"
	pgStorage "paypal-subscription-webhook/internal/adapter/storage/postgres"
	redisStorage "paypal-subscription-webhook/internal/adapter/storage/redis"
	"paypal-subscription-webhook/internal/adapter/storage/supabase"
	"paypal-subscription-webhook/internal/core/ports"
	"paypal-subscription-webhook/internal/service"
	"paypal-subscription-webhook/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting PayPal subscription webhook")

	ctx := context.Background()

	// Storage backend: Supabase REST when configured, direct
	// PostgreSQL otherwise.
	var (
		txRepo        ports.TransactionRepository
		subRepo       ports.SubscriptionRepository
		healthChecker ports.HealthChecker
	)
	if cfg.Supabase.Enabled() {
		sb := supabase.NewClient(cfg.Supabase, nil)
		txRepo = supabase.NewTransactionRepo(sb)
		subRepo = supabase.NewSubscriptionRepo(sb)
		healthChecker = supabase.NewHealthCheck(sb)
		log.Info().Msg("Using Supabase storage backend")
	} else {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		txRepo = pgStorage.NewTransactionRepo(pool)
		subRepo = pgStorage.NewSubscriptionRepo(pool)
		healthChecker = pgStorage.NewHealthCheck(pool)
		log.Info().Msg("PostgreSQL connected")
	}
	healthCheckers := []ports.HealthChecker{healthChecker}

	// Optional Redis-backed rate limiting
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled() {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected, rate limiting enabled")
	}

	// PayPal client and webhook service
	paypalClient := paypal.NewClient(cfg.PayPal, nil)
	webhookSvc := service.NewWebhookService(paypalClient, txRepo, subRepo, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WebhookSvc:     webhookSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
