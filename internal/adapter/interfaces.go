// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the survey-auth REST API.
//
// The primary abstraction is [AuthAPI], which decouples the terminal UI from
// the underlying protocol. Non-2xx responses are mapped by mapHTTPError to a
// [*ResponseError] that wraps one of the sentinel values in errors.go, so
// callers can use [errors.Is] (e.g. [ErrConflict] for 409) and still show
// the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/survey-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_api_mock.go -package=mock

// AuthAPI defines communication with the survey-auth server. Implementations
// are safe for concurrent use.
type AuthAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token logs the client out locally.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. On success the returned token is stored.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates by email and password. On success the returned
	// token is stored.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me fetches the profile of the stored token's account. It returns
	// ErrNoToken without a request when no token is stored.
	Me(ctx context.Context) (models.UserProfile, error)

	// Version fetches the server version.
	Version(ctx context.Context) (string, error)
}
