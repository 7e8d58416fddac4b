// Copyright (c) 2026 StoreRatings. All rights reserved.

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Clamping(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/stores", 1, 20},
		{"/stores?page=3&limit=50", 3, 50},
		{"/stores?page=-1&limit=0", 1, 20},
		{"/stores?page=abc&limit=xyz", 1, 20},
		{"/stores?limit=5000", 1, 20},
	}

	for _, tc := range cases {
		request := httptest.NewRequest("GET", tc.url, nil)
		params := FromRequest(request)
		assert.Equal(t, tc.wantPage, params.Page, tc.url)
		assert.Equal(t, tc.wantLimit, params.Limit, tc.url)
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Params{Page: 0, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 20, 45)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 45, meta.Total)

	assert.Equal(t, 0, NewMeta(1, 20, 0).TotalPages)
}
