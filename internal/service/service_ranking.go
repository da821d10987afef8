// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/chewsday/internal/adapter"
	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/metrics"
	"github.com/MKhiriev/chewsday/models"
	"github.com/sony/gobreaker/v2"
)

const searchSortBy = "rating"

// Fallback reasons, used as the metric label and log field.
const (
	fallbackAssistantDisabled = "assistant_disabled"
	fallbackBreakerOpen       = "breaker_open"
	fallbackAssistantError    = "assistant_error"
	fallbackPromptError       = "prompt_error"
)

type rankingService struct {
	searchProvider   adapter.SearchProvider
	rankingAssistant adapter.RankingAssistant

	searchTerm  string
	searchLimit int
	topN        int

	logger *logger.Logger
}

func NewRankingService(adapters *adapter.Adapters, cfg config.Adapter, logger *logger.Logger) RankingService {
	return &rankingService{
		searchProvider:   adapters.SearchProvider,
		rankingAssistant: adapters.RankingAssistant,
		searchTerm:       cfg.Provider.SearchTerm,
		searchLimit:      cfg.Provider.SearchLimit,
		topN:             cfg.Assistant.TopN,
		logger:           logger,
	}
}

// TopRestaurants fetches candidates around the given point and asks the
// assistant to pick and order the best of them.
//
// Only invalid coordinates and provider failures are returned as errors. Any
// assistant failure, including a reply that is not a valid index list, yields
// the candidates in provider order.
func (r *rankingService) TopRestaurants(ctx context.Context, req models.TopRestaurantsRequest) ([]models.Business, error) {
	log := logger.FromContext(ctx)

	latitude, longitude, err := parseCoordinates(req)
	if err != nil {
		return nil, err
	}

	businesses, err := r.searchProvider.SearchBusinesses(ctx, models.SearchQuery{
		Latitude:  latitude,
		Longitude: longitude,
		Term:      r.searchTerm,
		SortBy:    searchSortBy,
		Limit:     r.searchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("error searching restaurants: %w", err)
	}

	if len(businesses) == 0 {
		return []models.Business{}, nil
	}

	prompt, err := buildRankingPrompt(businesses, r.topN)
	if err != nil {
		return r.fallback(ctx, businesses, fallbackPromptError, err), nil
	}

	reply, err := r.rankingAssistant.RankCandidates(ctx, prompt)
	if err != nil {
		return r.fallback(ctx, businesses, assistantFailureReason(err), err), nil
	}

	order, err := parseRanking(reply, len(businesses))
	if err != nil {
		return r.fallback(ctx, businesses, rankingFailureReason(err), err), nil
	}

	log.Debug().Ints("order", order).Msg("assistant ranking applied")
	return project(businesses, order), nil
}

func (r *rankingService) fallback(ctx context.Context, businesses []models.Business, reason string, err error) []models.Business {
	logger.FromContext(ctx).Warn().Err(err).Str("reason", reason).Int("candidates", len(businesses)).Msg("ranking fell back to provider order")
	metrics.RecordRankingFallback(reason)

	return project(businesses, identityOrder(len(businesses)))
}

// parseCoordinates checks that both coordinates are present, numeric and in
// range.
func parseCoordinates(req models.TopRestaurantsRequest) (float64, float64, error) {
	lat, lon := strings.TrimSpace(req.Latitude), strings.TrimSpace(req.Longitude)
	if lat == "" || lon == "" {
		return 0, 0, ErrMissingCoordinates
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return 0, 0, ErrInvalidCoordinates
	}

	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil || math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return 0, 0, ErrInvalidCoordinates
	}

	return latitude, longitude, nil
}

func assistantFailureReason(err error) string {
	switch {
	case errors.Is(err, adapter.ErrAssistantDisabled):
		return fallbackAssistantDisabled
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fallbackBreakerOpen
	default:
		return fallbackAssistantError
	}
}

func project(businesses []models.Business, order []int) []models.Business {
	result := make([]models.Business, 0, len(order))
	for _, i := range order {
		result = append(result, businesses[i])
	}

	return result
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}
