// Copyright (c) 2026 StoreRatings. All rights reserved.

// Command api starts the store-ratings HTTP server.
//
// # Startup Order
//
//  1. Load configuration from the environment.
//  2. Connect PostgreSQL and Redis (fail fast if either is down).
//  3. Apply pending schema migrations.
//  4. Wire repositories, services, and handlers.
//  5. Serve until SIGINT/SIGTERM, then drain in-flight requests.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamMohdZiya/storeratings/internal/admin"
	"github.com/iamMohdZiya/storeratings/internal/api"
	"github.com/iamMohdZiya/storeratings/internal/auth"
	"github.com/iamMohdZiya/storeratings/internal/owner"
	"github.com/iamMohdZiya/storeratings/internal/platform/config"
	"github.com/iamMohdZiya/storeratings/internal/platform/constants"
	"github.com/iamMohdZiya/storeratings/internal/platform/migration"
	"github.com/iamMohdZiya/storeratings/internal/platform/postgres"
	"github.com/iamMohdZiya/storeratings/internal/platform/redis"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/internal/rating"
	"github.com/iamMohdZiya/storeratings/internal/stores"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// ── 1. Logging & Configuration ────────────────────────────────────────

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).
		With(slog.String("app", constants.AppName), slog.String("version", constants.AppVersion))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 2. Backing Stores ─────────────────────────────────────────────────

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	// ── 3. Schema Migrations ──────────────────────────────────────────────

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		return err
	}

	// ── 4. Wiring ─────────────────────────────────────────────────────────

	tokenCodec := sec.NewTokenCodec(cfg.TokenSecret, constants.AuthIssuer, cfg.TokenTTL)

	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, tokenCodec)

	storeRepository := stores.NewPostgresRepository(pool)
	storeService := stores.NewService(storeRepository, userRepository)

	ratingRepository := rating.NewPostgresRepository(pool)
	aggregateCache := rating.NewRedisAggregateCache(redisClient)
	ratingService := rating.NewService(ratingRepository, storeRepository, aggregateCache)

	ownerService := owner.NewService(storeRepository, ratingService)

	adminRepository := admin.NewPostgresRepository(pool)
	adminService := admin.NewService(adminRepository, authService, storeService)

	server := api.NewServer(api.Dependencies{
		Config:        cfg,
		Logger:        logger,
		DB:            pool,
		Redis:         redisClient,
		TokenCodec:    tokenCodec,
		AuthHandler:   auth.NewHandler(authService),
		StoreHandler:  stores.NewHandler(storeService),
		RatingHandler: rating.NewHandler(ratingService),
		OwnerHandler:  owner.NewHandler(ownerService),
		AdminHandler:  admin.NewHandler(adminService),
	})

	// ── 5. Serve & Graceful Shutdown ──────────────────────────────────────

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped cleanly")
	return nil
}
