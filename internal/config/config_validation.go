// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Backend identifies the primary store implementation selected by the DSN.
type Backend string

const (
	BackendUnknown  Backend = ""
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite3"
	BackendMongo    Backend = "mongodb"
)

// Backend reports which store implementation the DSN points at.
func (d DB) Backend() Backend {
	dsn := strings.ToLower(strings.TrimSpace(d.DSN))
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return BackendSQLite
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return BackendMongo
	default:
		return BackendUnknown
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// start-up invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.Backend() == BackendUnknown {
		return fmt.Errorf("%w: unsupported or empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.AuthRateLimit <= 0 {
		return ErrInvalidServerConfigs
	}

	provider := cfg.Adapter.Provider
	if provider.BaseURL == "" || provider.APIKey == "" || provider.Timeout <= 0 || provider.SearchLimit <= 0 {
		return fmt.Errorf("%w: provider base url, api key, timeout and search limit are required", ErrInvalidAdapterConfigs)
	}

	assistant := cfg.Adapter.Assistant
	if assistant.Timeout <= 0 || assistant.MaxTokens <= 0 || assistant.TopN <= 0 {
		return fmt.Errorf("%w: assistant timeout, max tokens and top n must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
