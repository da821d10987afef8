// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/chewsday/internal/adapter"
	"github.com/MKhiriev/chewsday/models"
)

func TestTopRestaurants_Success(t *testing.T) {
	h, m := newTestHandler(t)

	ranked := []models.Business{
		{ID: "c", Name: "Chez C", Rating: 4.8},
		{ID: "a", Name: "A Place", Rating: 4.5},
	}
	m.ranking.EXPECT().TopRestaurants(gomock.Any(), models.TopRestaurantsRequest{
		Latitude:  "37.7749",
		Longitude: "-122.4194",
	}).Return(ranked, nil)

	rec := httptest.NewRecorder()
	h.topRestaurants(rec, newJSONRequest(http.MethodGet, "/api/top-restaurants?latitude=37.7749&longitude=-122.4194", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.TopRestaurantsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Businesses, 2)
	assert.Equal(t, "c", body.Businesses[0].ID)
	assert.Equal(t, "a", body.Businesses[1].ID)
}

func TestTopRestaurants_EmptyResult(t *testing.T) {
	h, m := newTestHandler(t)
	m.ranking.EXPECT().TopRestaurants(gomock.Any(), gomock.Any()).Return([]models.Business{}, nil)

	rec := httptest.NewRecorder()
	h.topRestaurants(rec, newJSONRequest(http.MethodGet, "/api/top-restaurants?latitude=0&longitude=0", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"businesses":[]}`, rec.Body.String())
}

func TestTopRestaurants_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "no coordinates", query: ""},
		{name: "missing longitude", query: "?latitude=37.7"},
		{name: "missing latitude", query: "?longitude=-122.4"},
		{name: "latitude out of range", query: "?latitude=91&longitude=0"},
		{name: "longitude out of range", query: "?latitude=0&longitude=181"},
		{name: "not a number", query: "?latitude=north&longitude=west"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := httptest.NewRecorder()
			h.topRestaurants(rec, newJSONRequest(http.MethodGet, "/api/top-restaurants"+tt.query, ""))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeMessage(t, rec))
		})
	}
}

func TestTopRestaurants_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name: "provider rate limit is forwarded",
			err: fmt.Errorf("searching businesses: %w", &adapter.UpstreamError{
				Upstream:   "yelp",
				StatusCode: http.StatusTooManyRequests,
				Body:       `{"error":{"code":"TOO_MANY_REQUESTS_PER_SECOND"}}`,
			}),
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: `{"error":{"code":"TOO_MANY_REQUESTS_PER_SECOND"}}`,
		},
		{
			name: "provider unreachable",
			err: &adapter.UpstreamError{
				Upstream:   "yelp",
				StatusCode: http.StatusBadGateway,
				Err:        errors.New("connection refused"),
			},
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Bad Gateway",
		},
		{
			name:        "unexpected failure",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.ranking.EXPECT().TopRestaurants(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.topRestaurants(rec, newJSONRequest(http.MethodGet, "/api/top-restaurants?latitude=1&longitude=2", ""))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}
