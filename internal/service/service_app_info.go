// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/models"
)

// appInfoService answers GET /api/version. The version is fixed at start.
type appInfoService struct {
	version string
}

// NewAppInfoService builds the reported version from APP_VERSION. When the
// binary carries a build commit it is appended as semver build metadata,
// e.g. "1.4.0+3f2a9c1".
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrEmptyAppVersion
	}

	if commit := build.ShortCommit(); commit != "" && !strings.Contains(version, "+") {
		version += "+" + commit
	}

	logger.Info().Str("func", "NewAppInfoService").Str("version", version).Msg("serving app version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
