// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*UpstreamError] carrying
// the status and trimmed body otherwise.
func mapHTTPError(upstream string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return &UpstreamError{
		Upstream:   upstream,
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}

// mapTransportError converts a failed round trip into an [*UpstreamError]:
// timeouts become 504, everything else 502. A cancelled caller context is
// returned unchanged.
func mapTransportError(upstream string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	status := http.StatusBadGateway
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		status = http.StatusGatewayTimeout
	}

	return &UpstreamError{
		Upstream:   upstream,
		StatusCode: status,
		Body:       http.StatusText(status),
		Err:        err,
	}
}
