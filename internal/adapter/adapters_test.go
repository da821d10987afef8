// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapters(t *testing.T) {
	t.Run("without assistant key", func(t *testing.T) {
		adapters := NewAdapters(config.Adapter{}, logger.Nop())

		require.NotNil(t, adapters.SearchProvider)
		_, err := adapters.RankingAssistant.RankCandidates(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrAssistantDisabled)
	})

	t.Run("with assistant key", func(t *testing.T) {
		adapters := NewAdapters(config.Adapter{Assistant: config.Assistant{APIKey: "key"}}, logger.Nop())

		require.NotNil(t, adapters.SearchProvider)
		assert.IsType(t, &breakerRankingAssistant{}, adapters.RankingAssistant)
	})
}

func TestMapTransportError(t *testing.T) {
	err := mapTransportError("yelp", context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)

	err = mapTransportError("yelp", context.DeadlineExceeded)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 504, upstreamErr.StatusCode)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
