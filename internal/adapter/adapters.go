// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
)

// Adapters bundles the outbound integrations used by the service layer.
type Adapters struct {
	SearchProvider   SearchProvider
	RankingAssistant RankingAssistant
}

// NewAdapters builds the provider client and the breaker-wrapped assistant.
// Without an assistant API key every ranking call fails with
// [ErrAssistantDisabled] and callers fall back to provider order.
func NewAdapters(cfg config.Adapter, log *logger.Logger) *Adapters {
	var assistant RankingAssistant = disabledRankingAssistant{}
	if cfg.Assistant.APIKey != "" {
		assistant = NewBreakerRankingAssistant(NewOpenAIRankingAssistant(cfg.Assistant, log), log)
	} else {
		log.Warn().Msg("assistant API key is not set, rankings will use provider order")
	}

	return &Adapters{
		SearchProvider:   NewYelpSearchProvider(cfg.Provider, log),
		RankingAssistant: assistant,
	}
}
