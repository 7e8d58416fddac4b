// Copyright (c) 2026 StoreRatings. All rights reserved.

package rating

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamMohdZiya/storeratings/internal/platform/ctxutil"
	"github.com/iamMohdZiya/storeratings/internal/platform/sec"
)

func postRating(t *testing.T, handler http.Handler, claims *sec.Claims, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if claims != nil {
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), claims))
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestSubmitEndpoint_StatusCodes(t *testing.T) {
	service, _, _ := newRatingFixture(1)
	handler := NewHandler(service).Routes()
	claims := &sec.Claims{UserID: 10, Role: sec.RoleNormalUser}

	// First submission creates the rating.
	recorder := postRating(t, handler, claims, `{"store_id":1,"score":4}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	// Overwriting the same pair answers 200, not 201.
	recorder = postRating(t, handler, claims, `{"store_id":1,"score":2}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data SubmitResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Created)
	assert.Equal(t, 2, envelope.Data.Rating.Score)
	assert.Equal(t, Aggregate{Count: 1, Average: 2.0}, envelope.Data.Aggregate)
}

func TestSubmitEndpoint_Errors(t *testing.T) {
	service, _, _ := newRatingFixture(1)
	handler := NewHandler(service).Routes()
	claims := &sec.Claims{UserID: 10, Role: sec.RoleNormalUser}

	t.Run("anonymous", func(t *testing.T) {
		recorder := postRating(t, handler, nil, `{"store_id":1,"score":4}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		recorder := postRating(t, handler, claims, `{"store_id":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("score out of range", func(t *testing.T) {
		recorder := postRating(t, handler, claims, `{"store_id":1,"score":6}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown store", func(t *testing.T) {
		recorder := postRating(t, handler, claims, `{"store_id":99,"score":4}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMyRatingEndpoint(t *testing.T) {
	service, _, _ := newRatingFixture(1)
	handler := NewHandler(service).Routes()
	claims := &sec.Claims{UserID: 10, Role: sec.RoleNormalUser}

	request := httptest.NewRequest(http.MethodGet, "/1", nil)
	request = request.WithContext(ctxutil.WithPrincipal(request.Context(), claims))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	postRating(t, handler, claims, `{"store_id":1,"score":4}`)

	request = httptest.NewRequest(http.MethodGet, "/1", nil)
	request = request.WithContext(ctxutil.WithPrincipal(request.Context(), claims))
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
