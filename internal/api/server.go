// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package api assembles the HTTP server: the middleware chain, the role-gated
// route groups, and the health probes.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/iamMohdZiya/storeratings/internal/admin"
	"github.com/iamMohdZiya/storeratings/internal/auth"
	"github.com/iamMohdZiya/storeratings/internal/owner"
	"github.com/iamMohdZiya/storeratings/internal/platform/config"
	"github.com/iamMohdZiya/storeratings/internal/platform/constants"
	"github.com/iamMohdZiya/storeratings/internal/platform/middleware"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/internal/rating"
	"github.com/iamMohdZiya/storeratings/internal/stores"
)

// Dependencies carries everything the server needs, wired in main.
type Dependencies struct {
	Config     *config.Config
	Logger     *slog.Logger
	DB         *pgxpool.Pool
	Redis      *goredis.Client
	TokenCodec *sec.TokenCodec

	AuthHandler   *auth.Handler
	StoreHandler  *stores.Handler
	RatingHandler *rating.Handler
	OwnerHandler  *owner.Handler
	AdminHandler  *admin.Handler
}

// Server wraps the standard [http.Server] with graceful lifecycle control.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the full router and returns a ready-to-start server.
//
// # Route Groups
//
// Every request passes the Authenticate middleware once; each protected
// group then mounts its allowed-role set:
//   - /api/v1/auth    : public (password change guards itself).
//   - /api/v1/stores  : NORMAL_USER (admins browse via /admin/stores).
//   - /api/v1/ratings : NORMAL_USER only.
//   - /api/v1/owner   : STORE_OWNER only.
//   - /api/v1/admin   : ADMIN only.
func NewServer(deps Dependencies) *Server {
	router := chi.NewRouter()

	// ── Global Middleware Chain (order matters) ───────────────────────────
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(deps.Logger))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.PanicRecovery(deps.Logger))
	router.Use(middleware.Authenticate(deps.TokenCodec))
	router.Use(middleware.CORS(deps.Config, deps.Config.ExtraOrigins))
	router.Use(chimw.CleanPath)

	// ── Health Probes (outside the versioned API) ─────────────────────────
	health := newHealthHandler(deps.DB, deps.Redis)
	router.Get("/health", health.live)
	router.Get("/ready", health.ready)

	// ── Versioned API ─────────────────────────────────────────────────────
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", deps.AuthHandler.Routes())

		api.Group(func(normalUsers chi.Router) {
			normalUsers.Use(middleware.RequireRole(sec.RoleNormalUser))
			normalUsers.Mount("/stores", deps.StoreHandler.Routes())
			normalUsers.Mount("/ratings", deps.RatingHandler.Routes())
		})

		api.Group(func(owners chi.Router) {
			owners.Use(middleware.RequireRole(sec.RoleStoreOwner))
			owners.Mount("/owner", deps.OwnerHandler.Routes())
		})

		api.Group(func(admins chi.Router) {
			admins.Use(middleware.RequireRole(sec.RoleAdmin))
			admins.Mount("/admin", deps.AdminHandler.Routes())
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + deps.Config.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
		logger: deps.Logger,
	}
}

// Start runs the server until it is shut down or fails.
func (server *Server) Start() error {
	server.logger.Info("http server starting", slog.String("addr", server.httpServer.Addr))

	if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api_server_listen_failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests before closing.
func (server *Server) Shutdown(ctx context.Context) error {
	server.logger.Info("http server shutting down")
	return server.httpServer.Shutdown(ctx)
}
