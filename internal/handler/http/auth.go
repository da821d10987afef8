// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := h.decodeRequest(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.CreateToken(ctx, registeredUser.ID)
	if err != nil {
		writeError(w, r, fmt.Errorf("creation of token failed: %w", err))
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		Message: "User registered successfully",
		Token:   token.SignedString,
		User:    registeredUser.Identity(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := h.decodeRequest(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.CreateToken(ctx, foundUser.ID)
	if err != nil {
		writeError(w, r, fmt.Errorf("creation of token failed: %w", err))
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		Token:   token.SignedString,
		User:    foundUser.Identity(),
	}, http.StatusOK)
}

// logout revokes the token that authenticated the request. It is mounted
// only when token revocation is configured.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoToken)
		return
	}

	if err := h.services.TokenService.RevokeToken(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}
