// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = ":8888"
	defaultRequestTimeout = 30 * time.Second
	defaultAuthRateLimit  = 20

	defaultTokenIssuer   = "chewsday"
	defaultTokenDuration = 24 * time.Hour
	defaultBcryptCost    = 10

	defaultMongoDatabase = "chewsday"

	defaultProviderBaseURL     = "https://api.yelp.com"
	defaultProviderTimeout     = 10 * time.Second
	defaultProviderSearchTerm  = "restaurant"
	defaultProviderSearchLimit = 10

	defaultAssistantBaseURL   = "https://api.openai.com"
	defaultAssistantModel     = "gpt-3.5-turbo"
	defaultAssistantMaxTokens = 50
	defaultAssistantTimeout   = 15 * time.Second
	defaultAssistantTopN      = 5
)

// defaultConfig returns the values used for every field left unset by all
// configuration sources. Secrets and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			Version:       "dev",
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{Name: defaultMongoDatabase},
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
			AuthRateLimit:      defaultAuthRateLimit,
		},
		Adapter: Adapter{
			Provider: Provider{
				BaseURL:     defaultProviderBaseURL,
				Timeout:     defaultProviderTimeout,
				SearchTerm:  defaultProviderSearchTerm,
				SearchLimit: defaultProviderSearchLimit,
			},
			Assistant: Assistant{
				BaseURL:   defaultAssistantBaseURL,
				Model:     defaultAssistantModel,
				MaxTokens: defaultAssistantMaxTokens,
				Timeout:   defaultAssistantTimeout,
				TopN:      defaultAssistantTopN,
			},
		},
	}
}
