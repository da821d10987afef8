// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/metrics"
	"github.com/MKhiriev/chewsday/internal/utils"
)

const (
	openAIUpstream        = "openai"
	openAICompletionsPath = "/v1/chat/completions"

	rankingSystemMessage = "You are a helpful assistant for sorting data."
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type openAIRankingAssistant struct {
	client    *utils.HTTPClient
	model     string
	maxTokens int
	logger    *logger.Logger
}

// NewOpenAIRankingAssistant constructs a [RankingAssistant] on the OpenAI chat
// completions endpoint.
func NewOpenAIRankingAssistant(cfg config.Assistant, logger *logger.Logger) RankingAssistant {
	return &openAIRankingAssistant{
		client:    utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout, cfg.APIKey),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

func (o *openAIRankingAssistant) RankCandidates(ctx context.Context, prompt string) (content string, err error) {
	start := time.Now()
	defer func() { metrics.RecordUpstreamRequest(openAIUpstream, time.Since(start), err) }()

	var result chatCompletionResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model: o.model,
			Messages: []chatMessage{
				{Role: "system", Content: rankingSystemMessage},
				{Role: "user", Content: prompt},
			},
			MaxTokens: o.maxTokens,
		}).
		SetResult(&result).
		Post(openAICompletionsPath)
	if err != nil {
		return "", mapTransportError(openAIUpstream, err)
	}
	if err = mapHTTPError(openAIUpstream, resp); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrEmptyCompletion)
	}

	return result.Choices[0].Message.Content, nil
}

// disabledRankingAssistant is used when no assistant API key is configured.
type disabledRankingAssistant struct{}

func (disabledRankingAssistant) RankCandidates(context.Context, string) (string, error) {
	return "", ErrAssistantDisabled
}
