// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrAssistantDisabled = errors.New("ranking assistant is not configured")
	ErrEmptyCompletion   = errors.New("assistant returned no completion")
)

// UpstreamError is returned when an external service answers with a non-2xx
// status or cannot be reached. StatusCode is the upstream status, or 502/504
// for transport failures and timeouts; Body is the upstream body verbatim.
type UpstreamError struct {
	Upstream   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: upstream status %d: %v", e.Upstream, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: upstream status %d: %s", e.Upstream, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
