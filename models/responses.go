// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic {"message": ...} body used for plain
// acknowledgements and for every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserIdentity `json:"user"`
}

// FavoritesResponse lists both favorite collections.
type FavoritesResponse struct {
	FavoriteDishes      []string `json:"favoriteDishes"`
	FavoriteRestaurants []string `json:"favoriteRestaurants"`
}

// TopRestaurantsResponse holds the ranked candidates.
type TopRestaurantsResponse struct {
	Businesses []Business `json:"businesses"`
}

// HealthResponse is returned by /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewFavoritesResponse renders favorites with empty collections as [] rather
// than null.
func NewFavoritesResponse(f Favorites) FavoritesResponse {
	return FavoritesResponse{
		FavoriteDishes:      nonNil(f.Dishes),
		FavoriteRestaurants: nonNil(f.Restaurants),
	}
}
