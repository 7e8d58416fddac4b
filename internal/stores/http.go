// Copyright (c) 2026 StoreRatings. All rights reserved.

package stores

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/iamMohdZiya/storeratings/internal/platform/request"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// Handler implements the catalogue-facing HTTP endpoints.
type Handler struct {
	storeService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{storeService: service}
}

// Routes returns a [chi.Router] with the catalogue routes. The server mounts
// it behind the NORMAL_USER role gate; admins browse through /admin/stores.
//
// # Endpoints
//   - GET /      : Paginated store catalogue with live rating aggregates.
//   - GET /{id}  : A single store record.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.getByID)

	return router
}

// list handles GET /api/v1/stores requests.
//
// # Query Parameters
//   - search : substring match on name or address, case-insensitive.
//   - sort_by: name | email | address | rating | created_at (default name).
//   - order  : asc | desc (default asc).
//   - page, limit: standard pagination knobs.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	filter := ListFilter{
		Search:     query.Get("search"),
		SortBy:     query.Get("sort_by"),
		Descending: query.Get("order") == "desc",
	}
	page := pagination.FromRequest(request)

	summaries, total, err := handler.storeService.List(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, summaries, pagination.NewMeta(page.Page, page.Limit, total))
}

// getByID handles GET /api/v1/stores/{id} requests.
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	storeID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	store, err := handler.storeService.GetByID(request.Context(), storeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, store)
}
