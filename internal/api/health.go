// Copyright (c) 2026 StoreRatings. All rights reserved.

package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/iamMohdZiya/storeratings/internal/platform/constants"
	"github.com/iamMohdZiya/storeratings/internal/platform/postgres"
	"github.com/iamMohdZiya/storeratings/internal/platform/redis"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
)

// healthHandler serves the liveness and readiness probes.
type healthHandler struct {
	db    *pgxpool.Pool
	cache *goredis.Client
}

func newHealthHandler(db *pgxpool.Pool, cache *goredis.Client) *healthHandler {
	return &healthHandler{db: db, cache: cache}
}

// live handles GET /health. It only proves the process is serving requests.
func (handler *healthHandler) live(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus: "ok",
	})
}

// ready handles GET /ready. It pings both backing stores and reports 503 if
// either is unreachable, so load balancers stop routing before requests fail.
func (handler *healthHandler) ready(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{
		"postgres": "ok",
		"redis":    "ok",
	}
	healthy := true

	if err := postgres.Ping(request.Context(), handler.db); err != nil {
		checks["postgres"] = "unreachable"
		healthy = false
	}

	if err := redis.Ping(request.Context(), handler.cache); err != nil {
		checks["redis"] = "unreachable"
		healthy = false
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	respond.JSON(writer, status, map[string]interface{}{
		constants.FieldStatus: overall,
		constants.FieldChecks: checks,
	})
}
