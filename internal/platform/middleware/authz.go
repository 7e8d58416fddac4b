// Copyright (c) 2026 StoreRatings. All rights reserved.

// Access gate: the authenticate-then-authorize pipeline guarding protected
// operations.
//
// # Flow
//
// Every request passes [Authenticate] once; protected route groups then mount
// [RequireRole] with their allowed-role set. A request moves strictly through
// Unauthenticated → Authenticated → Authorized → Handling; any check failure
// terminates the request with 401/403 before a handler or side effect runs.

package middleware

import (
	"net/http"
	"strings"

	"github.com/iamMohdZiya/storeratings/internal/platform/apperr"
	"github.com/iamMohdZiya/storeratings/internal/platform/ctxutil"
	"github.com/iamMohdZiya/storeratings/internal/platform/respond"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
)

// TokenDecoder defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenDecoder here decouples the middleware from the [sec.TokenCodec]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenDecoder interface {
	Decode(tokenString string) (*sec.Claims, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous (public routes stay reachable;
//     protected routes reject anonymous requests in [RequireRole]).
//  3. If present, decode and verify via [TokenDecoder]. Malformed, tampered,
//     or expired tokens end the request with 401 — no handler runs.
//  4. Inject the decoded [*sec.Claims] into the request context, read-only
//     for the remainder of the request.
func Authenticate(decoder TokenDecoder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := decoder.Decode(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Used for routes open
// to every role (e.g. password change).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetPrincipal(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose principal is not in the allowed-role set.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It implies
// [RequireAuth] so both need not be mounted.
//
// # Flow
//  1. Check if [*sec.Claims] exists in context; missing ⇒ 401.
//  2. Check the principal's role against the allowed set; mismatch ⇒ 403.
//
// Authorization failures are final for the request: the client must obtain a
// new token to retry.
func RequireRole(allowed ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetPrincipal(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !claims.Role.OneOf(allowed...) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
