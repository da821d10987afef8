// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP request decoding and response writing, HTTP client initialization,
// JWT token generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/chewsday/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the context. The auth middleware writes it; handlers read it with
// GetUserIDFromContext.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190c6f4-...")
var UserIDCtxKey = contextKey("userID")

// TokenCtxKey is the key under which the auth middleware stores the parsed
// session token (models.Token).
var TokenCtxKey = contextKey("token")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenFromContext retrieves the parsed session token from the context.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
