// Copyright (c) 2026 StoreRatings. All rights reserved.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamMohdZiya/storeratings/internal/platform/ctxutil"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
)

// stubDecoder resolves a fixed set of tokens to principals.
type stubDecoder struct {
	tokens map[string]*sec.Claims
}

func (d *stubDecoder) Decode(tokenString string) (*sec.Claims, error) {
	if claims, ok := d.tokens[tokenString]; ok {
		return claims, nil
	}
	return nil, sec.ErrTokenInvalid
}

func newGateFixture(allowed ...sec.Role) (http.Handler, *bool) {
	reached := false
	final := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached = true
		writer.WriteHeader(http.StatusOK)
	})

	decoder := &stubDecoder{tokens: map[string]*sec.Claims{
		"user-token":  {UserID: 1, Name: "Normal User", Role: sec.RoleNormalUser},
		"owner-token": {UserID: 2, Name: "Store Owner", Role: sec.RoleStoreOwner},
		"admin-token": {UserID: 3, Name: "Admin", Role: sec.RoleAdmin},
	}}

	var handler http.Handler = final
	if len(allowed) > 0 {
		handler = RequireRole(allowed...)(handler)
	}
	handler = Authenticate(decoder)(handler)
	return handler, &reached
}

func doRequest(handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	handler, reached := newGateFixture()

	recorder := doRequest(handler, "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, *reached)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	handler, reached := newGateFixture()

	for _, header := range []string{"user-token", "Basic dXNlcg==", "Bearer"} {
		recorder := doRequest(handler, header)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
	assert.False(t, *reached)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	handler, reached := newGateFixture()

	recorder := doRequest(handler, "Bearer forged-token")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, *reached)
}

func TestRequireRole_AnonymousRejected(t *testing.T) {
	handler, reached := newGateFixture(sec.RoleNormalUser)

	recorder := doRequest(handler, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, *reached)
}

func TestRequireRole_WrongRoleRejected(t *testing.T) {
	handler, reached := newGateFixture(sec.RoleNormalUser)

	// An admin is not implicitly a normal user; the set is exact.
	recorder := doRequest(handler, "Bearer admin-token")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, *reached)
}

func TestRequireRole_AllowedRolePasses(t *testing.T) {
	handler, reached := newGateFixture(sec.RoleNormalUser, sec.RoleStoreOwner)

	recorder := doRequest(handler, "Bearer owner-token")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, *reached)
}

func TestAuthenticate_InjectsPrincipal(t *testing.T) {
	decoder := &stubDecoder{tokens: map[string]*sec.Claims{
		"user-token": {UserID: 42, Name: "Normal User", Role: sec.RoleNormalUser},
	}}

	var captured *sec.Claims
	handler := Authenticate(decoder)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured = ctxutil.GetPrincipal(request.Context())
	}))

	doRequest(handler, "Bearer user-token")

	assert.NotNil(t, captured)
	assert.Equal(t, int64(42), captured.UserID)
	assert.Equal(t, sec.RoleNormalUser, captured.Role)
}

func TestRequireAuth(t *testing.T) {
	final := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	RequireAuth(final).ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/password", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodPut, "/password", nil)
	request = request.WithContext(ctxutil.WithPrincipal(request.Context(), &sec.Claims{UserID: 1, Role: sec.RoleAdmin}))
	recorder = httptest.NewRecorder()
	RequireAuth(final).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
