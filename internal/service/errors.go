// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrPasswordTooShort   = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	ErrInvalidPhone       = fmt.Errorf("%w: phone must be %d to %d characters", ErrInvalidDataProvided, minPhoneLength, maxPhoneLength)
	ErrMissingCoordinates = fmt.Errorf("%w: latitude and longitude are required", ErrInvalidDataProvided)
	ErrInvalidCoordinates = fmt.Errorf("%w: latitude and longitude must be valid coordinates", ErrInvalidDataProvided)
	ErrEmptyFavoriteID    = fmt.Errorf("%w: favorite id is required", ErrInvalidDataProvided)

	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrRevocationDisabled      = errors.New("token revocation is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
