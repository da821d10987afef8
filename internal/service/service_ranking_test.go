// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/chewsday/internal/adapter"
	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/mock"
	"github.com/MKhiriev/chewsday/models"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAdapterConfig = config.Adapter{
	Provider:  config.Provider{SearchTerm: "restaurant", SearchLimit: 10},
	Assistant: config.Assistant{TopN: 5},
}

func newTestRankingService(t *testing.T) (RankingService, *mock.MockSearchProvider, *mock.MockRankingAssistant) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock.NewMockSearchProvider(ctrl)
	assistant := mock.NewMockRankingAssistant(ctrl)

	svc := NewRankingService(&adapter.Adapters{SearchProvider: provider, RankingAssistant: assistant}, testAdapterConfig, logger.Nop())
	return svc, provider, assistant
}

func testBusinesses(n int) []models.Business {
	businesses := make([]models.Business, n)
	for i := range businesses {
		businesses[i] = models.Business{ID: string(rune('a' + i)), Name: "Restaurant " + string(rune('A'+i)), Rating: 4}
	}
	return businesses
}

func businessIDs(businesses []models.Business) []string {
	ids := make([]string, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}
	return ids
}

var validRequest = models.TopRestaurantsRequest{Latitude: "37.7749", Longitude: "-122.4194"}

func TestRankingService_AppliesAssistantOrder(t *testing.T) {
	svc, provider, assistant := newTestRankingService(t)
	ctx := context.Background()

	provider.EXPECT().SearchBusinesses(ctx, models.SearchQuery{
		Latitude:  37.7749,
		Longitude: -122.4194,
		Term:      "restaurant",
		SortBy:    "rating",
		Limit:     10,
	}).Return(testBusinesses(3), nil)
	assistant.EXPECT().RankCandidates(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "top 3")
		assert.Contains(t, prompt, `"name":"Restaurant A"`)
		return "[2,0,1]", nil
	})

	got, err := svc.TopRestaurants(ctx, validRequest)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, businessIDs(got))
}

func TestRankingService_SubsetOrder(t *testing.T) {
	svc, provider, assistant := newTestRankingService(t)

	provider.EXPECT().SearchBusinesses(gomock.Any(), gomock.Any()).Return(testBusinesses(10), nil)
	assistant.EXPECT().RankCandidates(gomock.Any(), gomock.Any()).Return("```json\n[9, 3, 0, 4, 1]\n```", nil)

	got, err := svc.TopRestaurants(context.Background(), validRequest)

	require.NoError(t, err)
	assert.Equal(t, []string{"j", "d", "a", "e", "b"}, businessIDs(got))
}

func TestRankingService_FallsBackToProviderOrder(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		assistantErr error
	}{
		{name: "not json", reply: "not json"},
		{name: "json object", reply: `{"order":[1,0]}`},
		{name: "null", reply: "null"},
		{name: "empty array", reply: "[]"},
		{name: "index out of range", reply: "[0,3]"},
		{name: "negative index", reply: "[-1]"},
		{name: "duplicate index", reply: "[1,1]"},
		{name: "fractional index", reply: "[1.5]"},
		{name: "assistant error", assistantErr: errors.New("boom")},
		{name: "assistant timeout", assistantErr: context.DeadlineExceeded},
		{name: "breaker open", assistantErr: gobreaker.ErrOpenState},
		{name: "assistant disabled", assistantErr: adapter.ErrAssistantDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, assistant := newTestRankingService(t)

			provider.EXPECT().SearchBusinesses(gomock.Any(), gomock.Any()).Return(testBusinesses(3), nil)
			assistant.EXPECT().RankCandidates(gomock.Any(), gomock.Any()).Return(tt.reply, tt.assistantErr)

			got, err := svc.TopRestaurants(context.Background(), validRequest)

			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, businessIDs(got))
		})
	}
}

func TestRankingService_NoCandidates(t *testing.T) {
	svc, provider, _ := newTestRankingService(t)
	provider.EXPECT().SearchBusinesses(gomock.Any(), gomock.Any()).Return([]models.Business{}, nil)

	got, err := svc.TopRestaurants(context.Background(), validRequest)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankingService_ProviderFailure(t *testing.T) {
	svc, provider, _ := newTestRankingService(t)
	provider.EXPECT().SearchBusinesses(gomock.Any(), gomock.Any()).Return(nil, &adapter.UpstreamError{
		Upstream:   "yelp",
		StatusCode: http.StatusTooManyRequests,
		Body:       "slow down",
	})

	_, err := svc.TopRestaurants(context.Background(), validRequest)

	var upstreamErr *adapter.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, "slow down", upstreamErr.Body)
}

func TestRankingService_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		req     models.TopRestaurantsRequest
		wantErr error
	}{
		{name: "missing latitude", req: models.TopRestaurantsRequest{Longitude: "10"}, wantErr: ErrMissingCoordinates},
		{name: "missing longitude", req: models.TopRestaurantsRequest{Latitude: "10"}, wantErr: ErrMissingCoordinates},
		{name: "latitude not a number", req: models.TopRestaurantsRequest{Latitude: "north", Longitude: "10"}, wantErr: ErrInvalidCoordinates},
		{name: "latitude out of range", req: models.TopRestaurantsRequest{Latitude: "90.5", Longitude: "10"}, wantErr: ErrInvalidCoordinates},
		{name: "longitude out of range", req: models.TopRestaurantsRequest{Latitude: "10", Longitude: "-180.1"}, wantErr: ErrInvalidCoordinates},
		{name: "NaN", req: models.TopRestaurantsRequest{Latitude: "NaN", Longitude: "10"}, wantErr: ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestRankingService(t)

			_, err := svc.TopRestaurants(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ── parsing helpers ──────────────────────────────────────────────────────────

func TestParseRanking(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		n       int
		want    []int
		wantErr error
	}{
		{name: "plain", reply: "[2,0,1]", n: 3, want: []int{2, 0, 1}},
		{name: "fenced json", reply: "```json\n[1, 0]\n```", n: 2, want: []int{1, 0}},
		{name: "bare fence", reply: "```[0]```", n: 1, want: []int{0}},
		{name: "surrounding whitespace", reply: "  [0]\n", n: 1, want: []int{0}},
		{name: "prose", reply: "Here you go: [0]", n: 1, wantErr: errRankingNotJSON},
		{name: "null", reply: "null", n: 1, wantErr: errRankingNotJSON},
		{name: "empty", reply: "[]", n: 1, wantErr: errRankingEmpty},
		{name: "out of range", reply: "[1]", n: 1, wantErr: errRankingOutOfRange},
		{name: "duplicate", reply: "[0,0]", n: 2, wantErr: errRankingDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRanking(tt.reply, tt.n)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRankingFailureReason(t *testing.T) {
	assert.Equal(t, "empty_ranking", rankingFailureReason(errRankingEmpty))
	assert.Equal(t, "index_out_of_range", rankingFailureReason(errRankingOutOfRange))
	assert.Equal(t, "duplicate_index", rankingFailureReason(errRankingDuplicate))
	assert.Equal(t, "malformed_reply", rankingFailureReason(errRankingNotJSON))
}

func TestBuildRankingPrompt(t *testing.T) {
	businesses := []models.Business{
		{ID: "x", Name: "Xi'an Kitchen", Rating: 4.5, Price: "$$", Distance: 320.2, Categories: []models.Category{{Title: "Chinese"}}},
		{ID: "y", Name: "Yuzu", Rating: 4.0, Price: "$$$", Distance: 80},
	}

	prompt, err := buildRankingPrompt(businesses, 5)
	require.NoError(t, err)

	assert.Contains(t, prompt, "top 2 most suitable restaurants")
	assert.Contains(t, prompt, `"index":0`)
	assert.Contains(t, prompt, `"categories":["Chinese"]`)
	assert.True(t, strings.HasSuffix(prompt, "]"))
	assert.NotContains(t, prompt, `"id":"x"`)
}
