// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoAuthenticatedUser is returned when a protected handler runs
	// without the user id the auth middleware stores in the context.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")

	// ErrNoToken is returned by logout when the parsed token is missing
	// from the request context.
	ErrNoToken = errors.New("no token in request context")
)
