// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── NewAppInfoService ────────────────────────────────────────────────────────

func TestNewAppInfoService_BlankVersion(t *testing.T) {
	for _, version := range []string{"", "   "} {
		svc, err := NewAppInfoService(config.App{Version: version}, models.AppBuildInfo{}, logger.Nop())

		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrEmptyAppVersion)
	}
}

// ─── GetAppVersion ────────────────────────────────────────────────────────────

func TestAppInfoService_GetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		build   models.AppBuildInfo
		want    string
	}{
		{name: "config only", version: "1.4.0", want: "1.4.0"},
		{name: "trimmed", version: " 1.4.0\n", want: "1.4.0"},
		{
			name:    "commit appended as build metadata",
			version: "1.4.0",
			build:   models.NewAppBuildInfo("v1.4.0", "2026-10-01", "3f2a9c1b7e0d44"),
			want:    "1.4.0+3f2a9c1",
		},
		{
			name:    "dev build with commit",
			version: "dev",
			build:   models.NewAppBuildInfo("", "", "abc1234"),
			want:    "dev+abc1234",
		},
		{
			name:    "existing build metadata kept",
			version: "1.4.0+ci.42",
			build:   models.NewAppBuildInfo("", "", "3f2a9c1"),
			want:    "1.4.0+ci.42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, tt.build, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}
