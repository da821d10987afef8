// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chewsday/internal/adapter"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/service"
	"github.com/MKhiriev/chewsday/internal/store"
	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/internal/validators"
	"github.com/MKhiriev/chewsday/models"
)

const internalServerErrorMessage = "Internal Server Error"

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	validators.ErrValidation:       http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusBadRequest,
	utils.ErrMalformedJSON:         http.StatusBadRequest,

	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrNoAuthenticatedUser:              http.StatusUnauthorized,
	ErrNoToken:                          http.StatusUnauthorized,

	store.ErrUserAlreadyExists:  http.StatusConflict,
	store.ErrPhoneAlreadyExists: http.StatusConflict,

	store.ErrNoUserWasFound: http.StatusNotFound,
}

// statusFromError picks the response status for err. Upstream failures keep
// the provider's own status; anything unknown is a 500.
func statusFromError(err error) int {
	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode > 0 {
		return upstreamErr.StatusCode
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and responds with {"message": ...}. Internal errors
// never leak their detail to the client; upstream failures forward the
// provider's body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var message string
	var upstreamErr *adapter.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		log.Err(err).Str("upstream", upstreamErr.Upstream).Int("status", status).Msg("upstream request failed")
		message = upstreamMessage(upstreamErr)
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("internal error occurred")
		message = internalServerErrorMessage
	default:
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		message = err.Error()
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// upstreamMessage forwards the provider's body when it sent one.
func upstreamMessage(err *adapter.UpstreamError) string {
	if err.Body != "" {
		return err.Body
	}
	if text := http.StatusText(err.StatusCode); text != "" {
		return text
	}
	return internalServerErrorMessage
}
