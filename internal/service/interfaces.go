// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/chewsday/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and verifies their credentials.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// TokenService issues, verifies and revokes session tokens.
type TokenService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	RevokeToken(ctx context.Context, token models.Token) error

	// RevocationEnabled reports whether a revocation list is configured.
	RevocationEnabled() bool
}

// ProfileService exposes the profile and favorites of an authenticated user.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	GetFavorites(ctx context.Context, userID string) (models.Favorites, error)
	AddFavoriteDish(ctx context.Context, userID, dishID string) error
	AddFavoriteRestaurant(ctx context.Context, userID, restaurantID string) error
	SetPhone(ctx context.Context, userID, phone string) error
}

// RankingService returns nearby restaurants reordered by the assistant.
type RankingService interface {
	TopRestaurants(ctx context.Context, req models.TopRestaurantsRequest) ([]models.Business, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
