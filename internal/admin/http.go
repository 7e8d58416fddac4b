// Copyright (c) 2026 StoreRatings. All rights reserved.

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iamMohdZiya/storeratings/internal/auth"
	requestutil "github.com/iamMohdZiya/storeratings/internal/platform/request"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
	"github.com/iamMohdZiya/storeratings/internal/stores"
	"github.com/iamMohdZiya/storeratings/pkg/pagination"
)

// Handler implements the administration HTTP endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] with the administration routes. The server
// mounts it behind the ADMIN role gate.
//
// # Endpoints
//   - GET  /dashboard : Platform-wide user, store, and rating totals.
//   - GET  /users     : Filterable, sortable user directory.
//   - POST /users     : Create an account with an explicit role.
//   - GET  /stores    : Store catalogue with live aggregates.
//   - POST /stores    : Register a store, optionally assigned to an owner.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/dashboard", handler.dashboard)
	router.Get("/users", handler.listUsers)
	router.Post("/users", handler.createUser)
	router.Get("/stores", handler.listStores)
	router.Post("/stores", handler.createStore)

	return router
}

// dashboard handles GET /api/v1/admin/dashboard requests.
func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	totals, err := handler.adminService.Dashboard(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, totals)
}

// listUsers handles GET /api/v1/admin/users requests.
//
// # Query Parameters
//   - search : substring match on name, email, or address.
//   - role   : ADMIN | NORMAL_USER | STORE_OWNER.
//   - sort_by: name | email | address | role | created_at (default name).
//   - order  : asc | desc (default asc).
//   - page, limit: standard pagination knobs.
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	filter := UserFilter{
		Search:     query.Get("search"),
		Role:       sec.Role(query.Get("role")),
		SortBy:     query.Get("sort_by"),
		Descending: query.Get("order") == "desc",
	}
	page := pagination.FromRequest(request)

	users, total, err := handler.adminService.ListUsers(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(page.Page, page.Limit, total))
}

// createUserRequest represents the JSON payload for privileged account creation.
type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// createUser handles POST /api/v1/admin/users requests.
//
// # Returns
//   - HTTP 201 Created with the new account profile.
//   - HTTP 400 Bad Request if validation rules fail (including the role).
//   - HTTP 409 Conflict if the email is taken.
func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input createUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.adminService.CreateUser(request.Context(), auth.SignupInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
	}, sec.Role(input.Role))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// listStores handles GET /api/v1/admin/stores requests. It accepts the same
// query parameters as the public catalogue listing.
func (handler *Handler) listStores(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	filter := stores.ListFilter{
		Search:     query.Get("search"),
		SortBy:     query.Get("sort_by"),
		Descending: query.Get("order") == "desc",
	}
	page := pagination.FromRequest(request)

	summaries, total, err := handler.adminService.ListStores(request.Context(), filter, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, summaries, pagination.NewMeta(page.Page, page.Limit, total))
}

// createStoreRequest represents the JSON payload for store registration.
type createStoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID *int64 `json:"owner_id"`
}

// createStore handles POST /api/v1/admin/stores requests.
//
// # Returns
//   - HTTP 201 Created with the new store.
//   - HTTP 400 Bad Request if validation fails or the owner lacks the
//     STORE_OWNER role.
//   - HTTP 409 Conflict if the owner already manages a store.
func (handler *Handler) createStore(writer http.ResponseWriter, request *http.Request) {
	var input createStoreRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	store, err := handler.adminService.CreateStore(request.Context(), stores.CreateInput{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: input.OwnerID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, store)
}
