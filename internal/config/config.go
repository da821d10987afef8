// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// chewsday server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password-hashing parameters and the application
	// version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the primary store and the optional
	// Redis cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout and edge-protection settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration of the outbound integrations: the
	// restaurant search provider and the ranking assistant.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session
	// tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the primary store connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis settings backing the token revocation list.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the primary store. The backend is picked
// from the DSN scheme: postgres:// and postgresql:// select PostgreSQL,
// sqlite:// and file: select SQLite, mongodb:// and mongodb+srv:// select
// MongoDB.
type DB struct {
	// DSN is the connection string of the primary store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by SQL backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Cache holds Redis connection settings. An empty Address disables token
// revocation.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8888").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// AuthRateLimit is the number of register/login requests allowed per
	// client IP per minute.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT"`
}

// Adapter holds configuration for the outbound integrations.
type Adapter struct {
	Provider  Provider  `envPrefix:"PROVIDER_"`
	Assistant Assistant `envPrefix:"ASSISTANT_"`
}

// Provider configures the restaurant search provider (Yelp Fusion).
type Provider struct {
	// Env: ADAPTER_PROVIDER_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: ADAPTER_PROVIDER_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_PROVIDER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// SearchTerm is the fixed search term sent with every query.
	// Env: ADAPTER_PROVIDER_SEARCH_TERM
	SearchTerm string `env:"SEARCH_TERM"`
	// SearchLimit caps the number of candidates fetched per query.
	// Env: ADAPTER_PROVIDER_SEARCH_LIMIT
	SearchLimit int `env:"SEARCH_LIMIT"`
}

// Assistant configures the ranking assistant (OpenAI chat completions).
// An empty APIKey is allowed; every ranking then falls back to provider order.
type Assistant struct {
	// Env: ADAPTER_ASSISTANT_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: ADAPTER_ASSISTANT_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_ASSISTANT_MODEL
	Model string `env:"MODEL"`
	// MaxTokens caps the length of the assistant reply.
	// Env: ADAPTER_ASSISTANT_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`
	// Env: ADAPTER_ASSISTANT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// TopN is the number of candidates the assistant is asked to pick.
	// Env: ADAPTER_ASSISTANT_TOP_N
	TopN int `env:"TOP_N"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Sources in increasing priority (a non-zero field of a later
// source overrides an earlier one):
//  1. JSON file (path resolved from env or flags)
//  2. Environment variables
//  3. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
