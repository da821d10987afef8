// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/chewsday/internal/adapter"
	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	ProfileService ProfileService
	RankingService RankingService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(storages.TokenBlocklist, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		TokenService:   tokenService,
		ProfileService: NewProfileService(storages.UserRepository, logger),
		RankingService: NewRankingService(adapters, cfg.Adapter, logger),
		AppInfoService: appInfoService,
	}, nil
}
