// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the chewsday server:
// the restaurant search provider (Yelp Fusion) and the ranking assistant
// (OpenAI chat completions).
//
// Both clients are built on resty through [utils.HTTPClient]. Provider
// failures surface as [*UpstreamError] carrying the provider status so the
// HTTP layer can relay it. The assistant is wrapped in a circuit breaker; its
// failures are never relayed to clients because the ranking service falls back
// to provider order.
package adapter

import (
	"context"

	"github.com/MKhiriev/chewsday/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SearchProvider fetches candidate restaurants around a point.
type SearchProvider interface {
	// SearchBusinesses returns the provider's listings for query in the
	// provider's own order. Non-2xx answers, transport failures and timeouts
	// are returned as [*UpstreamError].
	SearchBusinesses(ctx context.Context, query models.SearchQuery) ([]models.Business, error)
}

// RankingAssistant asks a language model to order candidates.
type RankingAssistant interface {
	// RankCandidates sends prompt and returns the raw text of the first
	// completion. The reply is untrusted and must be parsed by the caller.
	RankCandidates(ctx context.Context, prompt string) (string, error)
}
