// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/crypto"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/store"
	"github.com/MKhiriev/survey-auth/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashAlgorithm, cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg, logger)
	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, hasher, tokenService, logger),
	)

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
