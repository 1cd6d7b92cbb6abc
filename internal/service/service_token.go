// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/utils"
	"github.com/MKhiriev/survey-auth/models"
)

// tokenService signs session tokens with a single HMAC key. All state is
// read-only after construction.
type tokenService struct {
	signKey  string
	lifetime time.Duration

	// now is replaced in tests to move the clock.
	now func() time.Time

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		lifetime: cfg.TokenLifetime(),
		now:      time.Now,
		logger:   logger,
	}
}

// Issue returns a token whose subject is the user's email and whose
// expiry is the configured lifetime from now.
func (t *tokenService) Issue(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(user, t.lifetime, t.signKey, t.now())
	if err != nil {
		log.Err(err).Str("func", "tokenService.Issue").Int64("user_id", user.ID).Msg("error generating token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify collapses every failure into ErrTokenIsExpiredOrInvalid. The
// cause is only logged.
func (t *tokenService) Verify(ctx context.Context, tokenString string) (*models.Claims, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.now())
	if err != nil {
		log.Debug().Err(err).Str("func", "tokenService.Verify").Msg("token rejected")
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}
