// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/survey-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService registers accounts, authenticates them and resolves the
// account behind a session token.
type AuthService interface {
	// Register creates an account and returns its profile with a fresh token.
	// Conflicts are reported as errors wrapping ErrAlreadyExists.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login checks the credentials and returns the profile with a fresh token.
	// Failures are reported as errors wrapping ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CurrentUser returns the account with email or ErrUserNotFound.
	CurrentUser(ctx context.Context, email string) (models.User, error)

	// ParseToken verifies tokenString and returns its claims or
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (*models.Claims, error)
}

// TokenService issues and verifies HS256 session tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (string, error)
	Verify(ctx context.Context, tokenString string) (*models.Claims, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
