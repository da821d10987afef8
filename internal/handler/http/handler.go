// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/service"
	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}

// decodeRequest strictly decodes the JSON body into dst and validates it.
func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r.Body, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}
