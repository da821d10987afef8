// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) addFavoriteDish(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	if err := h.services.ProfileService.AddFavoriteDish(r.Context(), userID, chi.URLParam(r, "dishId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Dish added to favorites"}, http.StatusOK)
}

func (h *Handler) addFavoriteRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	if err := h.services.ProfileService.AddFavoriteRestaurant(r.Context(), userID, chi.URLParam(r, "restaurantId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Restaurant added to favorites"}, http.StatusOK)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	favorites, err := h.services.ProfileService.GetFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewFavoritesResponse(favorites), http.StatusOK)
}

func (h *Handler) uploadPhone(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	var request models.PhoneRequest
	if err := h.decodeRequest(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.ProfileService.SetPhone(r.Context(), userID, request.Phone); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Phone number updated successfully"}, http.StatusOK)
}
