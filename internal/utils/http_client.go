// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used by the
// outbound adapters. It embeds *resty.Client to expose all of its methods
// directly.
//
//	client := utils.NewHTTPClient("https://api.yelp.com", 10*time.Second, apiKey)
//	resp, err := client.R().SetContext(ctx).Get("/v3/businesses/search")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client bound to baseURL with a per-request
// timeout. A non-empty bearerToken is sent as "Authorization: Bearer ...".
// Retries are disabled.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration, bearerToken string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if bearerToken != "" {
		client.SetAuthToken(bearerToken)
	}

	return &HTTPClient{Client: client}
}
