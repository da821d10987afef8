// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/models"
)

// topRestaurants ranks restaurants around ?latitude=&longitude=.
func (h *Handler) topRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := models.TopRestaurantsRequest{
		Latitude:  query.Get("latitude"),
		Longitude: query.Get("longitude"),
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	businesses, err := h.services.RankingService.TopRestaurants(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TopRestaurantsResponse{Businesses: businesses}, http.StatusOK)
}
