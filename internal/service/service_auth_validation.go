// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/validators"
	"github.com/MKhiriev/survey-auth/models"
)

// AuthValidationService trims and validates requests before handing them to
// the wrapped AuthService. Passwords are never trimmed.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("func", "AuthValidationService.Register").Msg("invalid register request")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)

	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("func", "AuthValidationService.Login").Msg("invalid login request")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, email string) (models.User, error) {
	return v.inner.CurrentUser(ctx, email)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
