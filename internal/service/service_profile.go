// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/store"
	"github.com/MKhiriev/chewsday/models"
)

const (
	minPhoneLength = 10
	maxPhoneLength = 15
)

type profileService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the user's profile including both favorite sets. The
// profile carries no password material.
func (p *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("error getting user: %w", err)
	}

	favorites, err := p.userRepository.GetFavorites(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("error getting favorites: %w", err)
	}
	user.FavoriteDishes = favorites.Dishes
	user.FavoriteRestaurants = favorites.Restaurants

	return user.Profile(), nil
}

func (p *profileService) GetFavorites(ctx context.Context, userID string) (models.Favorites, error) {
	favorites, err := p.userRepository.GetFavorites(ctx, userID)
	if err != nil {
		return models.Favorites{}, fmt.Errorf("error getting favorites: %w", err)
	}

	return favorites, nil
}

// AddFavoriteDish adds dishID to the user's favorite dishes. Adding an
// identifier that is already present succeeds without a write.
func (p *profileService) AddFavoriteDish(ctx context.Context, userID, dishID string) error {
	if strings.TrimSpace(dishID) == "" {
		return ErrEmptyFavoriteID
	}

	if err := p.userRepository.AddFavoriteDish(ctx, userID, dishID); err != nil {
		return fmt.Errorf("error adding favorite dish: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Str("dish_id", dishID).Msg("favorite dish added")
	return nil
}

// AddFavoriteRestaurant is the restaurant counterpart of AddFavoriteDish.
func (p *profileService) AddFavoriteRestaurant(ctx context.Context, userID, restaurantID string) error {
	if strings.TrimSpace(restaurantID) == "" {
		return ErrEmptyFavoriteID
	}

	if err := p.userRepository.AddFavoriteRestaurant(ctx, userID, restaurantID); err != nil {
		return fmt.Errorf("error adding favorite restaurant: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Str("restaurant_id", restaurantID).Msg("favorite restaurant added")
	return nil
}

// SetPhone stores the user's phone number. The length is checked, in
// characters, before the store is touched.
func (p *profileService) SetPhone(ctx context.Context, userID, phone string) error {
	if n := utf8.RuneCountInString(phone); n < minPhoneLength || n > maxPhoneLength {
		return ErrInvalidPhone
	}

	if err := p.userRepository.SetPhone(ctx, userID, phone); err != nil {
		return fmt.Errorf("error setting phone: %w", err)
	}

	return nil
}
