// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/chewsday/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their favorite collections.
//
// Favorite additions are atomic add-if-absent operations: adding an
// identifier that is already present succeeds without writing.
type UserRepository interface {
	// CreateUser stores a new account. A taken username or email yields
	// [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByEmail and FindUserByID return [ErrNoUserWasFound] for unknown
	// accounts. Favorites are not loaded.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	AddFavoriteDish(ctx context.Context, userID, dishID string) error
	AddFavoriteRestaurant(ctx context.Context, userID, restaurantID string) error
	// GetFavorites returns both collections in insertion order.
	GetFavorites(ctx context.Context, userID string) (models.Favorites, error)

	// SetPhone replaces the phone of userID. A phone already used by another
	// account yields [ErrPhoneAlreadyExists].
	SetPhone(ctx context.Context, userID, phone string) error
}

// TokenBlocklist keeps identifiers of revoked session tokens until they
// would have expired anyway.
type TokenBlocklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
