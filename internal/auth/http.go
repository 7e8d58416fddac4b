// Copyright (c) 2026 StoreRatings. All rights reserved.

// HTTP delivery layer for the auth use cases.
//
// # Architecture
//
// Handlers act as the "gatekeepers" to the system. They are responsible for:
//   - JSON Request parsing and strict input validation.
//   - Mapping HTTP contexts to service layer method calls.
//   - Standardizing JSON response formats via the [respond] package.
//
// They contain NO business logic or database queries.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iamMohdZiya/storeratings/internal/platform/middleware"
	requestutil "github.com/iamMohdZiya/storeratings/internal/platform/request"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
	"github.com/iamMohdZiya/storeratings/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup   : Creates a new NORMAL_USER account.
//   - POST /login    : Authenticates and returns a session token.
//   - PUT  /password : Changes the caller's password (any authenticated role).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.With(middleware.RequireAuth).Put("/password", handler.changePassword)

	return router
}

// signupRequest represents the JSON payload expected for account creation.
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// signup handles POST /api/v1/auth/signup requests.
//
// # Returns
//   - HTTP 201 Created on success with the User profile.
//   - HTTP 400 Bad Request if validation rules fail.
//   - HTTP 409 Conflict if the email is taken.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Full policy validation (name length, password rules) happens in the
	// service layer so the admin create-user path shares it.
	user, err := handler.authService.Signup(request.Context(), SignupInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/v1/auth/login requests.
//
// # Returns
//   - HTTP 200 OK on success with the session token and User profile.
//   - HTTP 401 Unauthorized for bad credentials (uniform, reason never leaked).
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// changePasswordRequest represents the JSON payload for a password change.
type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// changePassword handles PUT /api/v1/auth/password requests.
//
// # Returns
//   - HTTP 200 OK on success.
//   - HTTP 401 Unauthorized if the old password does not match.
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.authService.ChangePassword(request.Context(), userID, input.OldPassword, input.NewPassword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Password updated"})
}
