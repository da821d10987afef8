// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, CORS, compression, rate limiting and bearer-token authentication
// are handled in this package before requests are delegated to the service
// layer. Every error response is a JSON {"message": ...} body whose status is
// chosen by a single mapper (see errors_mapper.go).
package http
