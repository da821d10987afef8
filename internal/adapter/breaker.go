// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/metrics"
	"github.com/sony/gobreaker/v2"
)

const (
	assistantBreakerName = "ranking-assistant"

	breakerMaxRequests         = 1
	breakerInterval            = time.Minute
	breakerOpenTimeout         = 30 * time.Second
	breakerConsecutiveFailures = 5
)

type breakerRankingAssistant struct {
	next RankingAssistant
	cb   *gobreaker.CircuitBreaker[string]
}

// NewBreakerRankingAssistant wraps next with a circuit breaker that opens
// after consecutive failures. While open, calls fail immediately with
// [gobreaker.ErrOpenState]. A cancelled caller does not count as a failure.
func NewBreakerRankingAssistant(next RankingAssistant, log *logger.Logger) RankingAssistant {
	metrics.CircuitBreakerState.WithLabelValues(assistantBreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        assistantBreakerName,
		MaxRequests: breakerMaxRequests,
		Interval:    breakerInterval,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerConsecutiveFailures
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			metrics.RecordBreakerStateChange(name, from.String(), to.String())
		},
	})

	return &breakerRankingAssistant{next: next, cb: cb}
}

func (b *breakerRankingAssistant) RankCandidates(ctx context.Context, prompt string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.RankCandidates(ctx, prompt)
	})
}
