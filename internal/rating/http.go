// Copyright (c) 2026 StoreRatings. All rights reserved.

package rating

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/iamMohdZiya/storeratings/internal/platform/request"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
)

// Handler implements the rating HTTP endpoints.
type Handler struct {
	ratingService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{ratingService: service}
}

// Routes returns a [chi.Router] with the rating routes. The server mounts it
// behind the NORMAL_USER role gate: only regular users submit ratings.
//
// # Endpoints
//   - POST /            : Submit or overwrite the caller's rating for a store.
//   - GET  /{storeID}   : The caller's current rating for a store.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)
	router.Get("/{storeID}", handler.myRating)

	return router
}

// submitRequest represents the JSON payload for a rating submission.
type submitRequest struct {
	StoreID int64 `json:"store_id"`
	Score   int   `json:"score"`
}

// submit handles POST /api/v1/ratings requests.
//
// # Returns
//   - HTTP 201 Created for a first-time rating.
//   - HTTP 200 OK when an existing rating was overwritten.
//   - HTTP 400 Bad Request for an out-of-range score.
//   - HTTP 404 Not Found if the store does not exist.
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.ratingService.Submit(request.Context(), userID, SubmitInput{
		StoreID: input.StoreID,
		Score:   input.Score,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result.Created {
		respond.Created(writer, result)
		return
	}
	respond.OK(writer, result)
}

// myRating handles GET /api/v1/ratings/{storeID} requests.
func (handler *Handler) myRating(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	storeID, err := requestutil.ID(request, "storeID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.ratingService.MyRating(request.Context(), userID, storeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rating)
}
