// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate request schemas. Supports
//     optional field-level scoping for targeted validation.
//   - [NewRequestValidator]: the struct-tag implementation backed by a shared
//     go-playground/validator instance.
//
// Every failure wraps [ErrValidation] and carries a client-readable message
// naming the offending JSON field.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for request schemas.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
