// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/chewsday/models"
)

var (
	errRankingNotJSON    = errors.New("assistant reply is not a JSON index array")
	errRankingEmpty      = errors.New("assistant reply is an empty array")
	errRankingOutOfRange = errors.New("assistant reply has an index out of range")
	errRankingDuplicate  = errors.New("assistant reply has a duplicate index")
)

// rankingCandidate is the compact form of a listing sent to the assistant.
type rankingCandidate struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Price       string   `json:"price,omitempty"`
	Distance    float64  `json:"distance"`
	Categories  []string `json:"categories,omitempty"`
}

func buildRankingPrompt(businesses []models.Business, topN int) (string, error) {
	if topN <= 0 || topN > len(businesses) {
		topN = len(businesses)
	}

	candidates := make([]rankingCandidate, 0, len(businesses))
	for i, b := range businesses {
		c := rankingCandidate{
			Index:       i,
			Name:        b.Name,
			Rating:      b.Rating,
			ReviewCount: b.ReviewCount,
			Price:       b.Price,
			Distance:    b.Distance,
		}
		for _, category := range b.Categories {
			c.Categories = append(c.Categories, category.Title)
		}
		candidates = append(candidates, c)
	}

	data, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("error encoding candidates: %w", err)
	}

	return fmt.Sprintf("Sort the following restaurants based on their ratings, distance, and price, "+
		"and return only a JSON array of indexes for the top %d most suitable restaurants, like [3, 0, 2]. "+
		"Only return the array, nothing else. Data: %s", topN, data), nil
}

// cleanAssistantReply removes markdown code fences and surrounding whitespace.
func cleanAssistantReply(reply string) string {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```", "")

	return strings.TrimSpace(reply)
}

// parseRanking decodes the assistant reply into a list of distinct indexes
// into a candidate list of length n.
func parseRanking(reply string, n int) ([]int, error) {
	var order []int
	if err := json.Unmarshal([]byte(cleanAssistantReply(reply)), &order); err != nil {
		return nil, fmt.Errorf("%w: %w", errRankingNotJSON, err)
	}
	if order == nil {
		return nil, errRankingNotJSON
	}
	if len(order) == 0 {
		return nil, errRankingEmpty
	}

	seen := make(map[int]struct{}, len(order))
	for _, i := range order {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d", errRankingOutOfRange, i)
		}
		if _, ok := seen[i]; ok {
			return nil, fmt.Errorf("%w: %d", errRankingDuplicate, i)
		}
		seen[i] = struct{}{}
	}

	return order, nil
}

func rankingFailureReason(err error) string {
	switch {
	case errors.Is(err, errRankingEmpty):
		return "empty_ranking"
	case errors.Is(err, errRankingOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, errRankingDuplicate):
		return "duplicate_index"
	default:
		return "malformed_reply"
	}
}
