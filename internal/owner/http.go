// Copyright (c) 2026 StoreRatings. All rights reserved.

package owner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/iamMohdZiya/storeratings/internal/platform/request"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
)

// Handler implements the store owner's HTTP endpoints.
type Handler struct {
	ownerService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{ownerService: service}
}

// Routes returns a [chi.Router] with the owner routes. The server mounts it
// behind the STORE_OWNER role gate.
//
// # Endpoints
//   - GET /dashboard : The owner's store, aggregate, and rater list.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/dashboard", handler.dashboard)

	return router
}

// dashboard handles GET /api/v1/owner/dashboard requests.
//
// # Returns
//   - HTTP 200 OK with the dashboard payload.
//   - HTTP 404 Not Found when the account has no store assigned.
func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	dashboard, err := handler.ownerService.Dashboard(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dashboard)
}
