// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/store"
	"github.com/MKhiriev/chewsday/internal/utils"
	"github.com/MKhiriev/chewsday/models"
)

// tokenService issues and verifies HS256 session tokens. When a blocklist is
// present, revoked token ids are rejected during verification.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// blocklist is nil when revocation is not configured.
	blocklist store.TokenBlocklist

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService returns a TokenService using the signing parameters of cfg.
// blocklist may be nil. An empty sign key is rejected.
func NewTokenService(blocklist store.TokenBlocklist, cfg config.App, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, config.ErrMissingTokenSignKey
	}

	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		blocklist:     blocklist,
		now:           time.Now,
		logger:        logger,
	}, nil
}

// CreateToken issues a signed JWT for userID.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, a random "jti" and expires after
// tokenDuration.
func (s *tokenService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (malformed, bad signature, expired, wrong issuer,
// wrong algorithm, revoked) is normalised to ErrTokenIsExpiredOrInvalid. A
// failure to read the blocklist is returned as an internal error.
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if s.blocklist == nil {
		return token, nil
	}

	revoked, err := s.blocklist.IsRevoked(ctx, token.ID)
	if err != nil {
		log.Err(err).Str("func", "*tokenService.ParseToken").Msg("error checking token revocation")
		return models.Token{}, fmt.Errorf("error checking token revocation: %w", err)
	}
	if revoked {
		log.Debug().Str("jti", token.ID).Msg("token is revoked")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RevokeToken adds the token id to the blocklist until the token expires.
func (s *tokenService) RevokeToken(ctx context.Context, token models.Token) error {
	if s.blocklist == nil {
		return ErrRevocationDisabled
	}
	if token.ID == "" {
		return ErrTokenIsExpiredOrInvalid
	}

	if err := s.blocklist.Revoke(ctx, token.ID, token.RemainingLifetime(s.now())); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.RevokeToken").Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

func (s *tokenService) RevocationEnabled() bool {
	return s.blocklist != nil
}
