// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/metrics"
	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/models"
)

const (
	yelpUpstream   = "yelp"
	yelpSearchPath = "/v3/businesses/search"
)

type yelpSearchResponse struct {
	Businesses []models.Business `json:"businesses"`
	Total      int               `json:"total"`
}

type yelpSearchProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewYelpSearchProvider constructs a [SearchProvider] for the Yelp Fusion
// business search endpoint. The API key is sent as a bearer token.
func NewYelpSearchProvider(cfg config.Provider, logger *logger.Logger) SearchProvider {
	return &yelpSearchProvider{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout, cfg.APIKey),
		logger: logger,
	}
}

func (y *yelpSearchProvider) SearchBusinesses(ctx context.Context, query models.SearchQuery) (businesses []models.Business, err error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() { metrics.RecordUpstreamRequest(yelpUpstream, time.Since(start), err) }()

	var result yelpSearchResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(query.Latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(query.Longitude, 'f', -1, 64),
			"term":      query.Term,
			"sort_by":   query.SortBy,
			"limit":     strconv.Itoa(query.Limit),
		}).
		SetResult(&result).
		Get(yelpSearchPath)
	if err != nil {
		log.Err(err).Str("func", "*yelpSearchProvider.SearchBusinesses").Msg("search request failed")
		return nil, mapTransportError(yelpUpstream, err)
	}
	if err = mapHTTPError(yelpUpstream, resp); err != nil {
		log.Warn().Str("func", "*yelpSearchProvider.SearchBusinesses").Int("status", resp.StatusCode()).Msg("search provider answered with an error")
		return nil, err
	}

	if result.Businesses == nil {
		return []models.Business{}, nil
	}

	return result.Businesses, nil
}
