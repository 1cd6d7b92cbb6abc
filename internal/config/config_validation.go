// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/survey-auth/internal/crypto"
)

const (
	// minTokenSignKeyLength is the HS256 key size in bytes.
	minTokenSignKeyLength = 32

	// maxTokenLifetimeMillis keeps TokenLifetime far below the time.Duration
	// overflow.
	maxTokenLifetimeMillis = int64(365 * 24 * time.Hour / time.Millisecond)

	defaultTokenLifetimeMillis   = int64(24 * time.Hour / time.Millisecond)
	defaultPasswordHashAlgorithm = crypto.AlgorithmBcrypt
	defaultLogLevel              = "debug"
	defaultVersion               = "dev"
	defaultHTTPAddress           = "localhost:8080"

	defaultAdapterHTTPAddress    = "http://localhost:8080"
	defaultAdapterRequestTimeout = 15 * time.Second
)

var supportedDSNPrefixes = []string{"postgres://", "postgresql://", "sqlite://", "file:"}

// validate fills defaults for optional settings and checks that the merged
// [StructuredConfig] can be used to start the server.
func (cfg *StructuredConfig) validate() error {
	cfg.applyDefaults()

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLength)
	}
	if cfg.App.TokenLifetimeMillis <= 0 {
		return fmt.Errorf("%w: token lifetime must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenLifetimeMillis > maxTokenLifetimeMillis {
		return fmt.Errorf("%w: token lifetime must not exceed %d ms", ErrInvalidAppConfigs, maxTokenLifetimeMillis)
	}
	if !crypto.IsSupportedAlgorithm(cfg.App.PasswordHashAlgorithm) {
		return fmt.Errorf("%w: unsupported password hash algorithm %q", ErrInvalidAppConfigs, cfg.App.PasswordHashAlgorithm)
	}
	if cfg.App.PasswordHashCost < 0 {
		return fmt.Errorf("%w: password hash cost must not be negative", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if !hasSupportedDSNPrefix(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listener address configured", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenLifetimeMillis == 0 {
		cfg.App.TokenLifetimeMillis = defaultTokenLifetimeMillis
	}
	if cfg.App.PasswordHashAlgorithm == "" {
		cfg.App.PasswordHashAlgorithm = defaultPasswordHashAlgorithm
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterRequestTimeout
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server URL must be an absolute http(s) URL", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidAdapterConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}

func hasSupportedDSNPrefix(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
