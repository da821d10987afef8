// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PhoneRequest is the body of POST /api/profile/upload/phone.
type PhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// TopRestaurantsRequest carries the query of GET /api/top-restaurants.
// Coordinates arrive as strings and are validated as numbers in range.
type TopRestaurantsRequest struct {
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}
