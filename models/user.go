// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and for the
// favorites collections. PasswordHash is a bcrypt digest and never leaves
// the server: it is not serialized and has no counterpart in [Profile].
type User struct {
	// ID is the UUIDv7 identifier assigned at registration.
	ID string `json:"id" bson:"_id"`

	// Username is unique across all accounts.
	Username string `json:"username" bson:"username"`

	// Email is unique across all accounts, stored trimmed and lower-cased.
	Email string `json:"email" bson:"email"`

	// Phone is optional and unique when set.
	Phone *string `json:"phone,omitempty" bson:"phone,omitempty"`

	PasswordHash string `json:"-" bson:"password_hash"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// FavoriteDishes and FavoriteRestaurants are sets preserving insertion
	// order.
	FavoriteDishes      []string `json:"favorite_dishes" bson:"favorite_dishes"`
	FavoriteRestaurants []string `json:"favorite_restaurants" bson:"favorite_restaurants"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the externally visible projection of u.
func (u User) Profile() Profile {
	return Profile{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		Phone:               u.Phone,
		CreatedAt:           u.CreatedAt,
		FavoriteDishes:      nonNil(u.FavoriteDishes),
		FavoriteRestaurants: nonNil(u.FavoriteRestaurants),
	}
}

// Identity returns the short user descriptor embedded in auth responses.
func (u User) Identity() UserIdentity {
	return UserIdentity{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Profile is a user as shown to its owner. It has no password field.
type Profile struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	Phone               *string   `json:"phone,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	FavoriteDishes      []string  `json:"favoriteDishes"`
	FavoriteRestaurants []string  `json:"favoriteRestaurants"`
}

// Favorites holds both favorite collections of a user.
type Favorites struct {
	Dishes      []string
	Restaurants []string
}

// UserIdentity is the public part of a user returned on register and login.
type UserIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
