// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/survey-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists accounts in the users table.
type UserRepository interface {
	// ExistsByEmail reports whether an account with email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether an account with username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// FindUserByEmail returns the account with email or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// A unique constraint violation is reported as [ErrEmailAlreadyExists],
	// [ErrUsernameAlreadyExists] or [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator maps driver specific errors to a dialect independent
// classification.
type ErrorClassificator interface {
	Classify(err error) ClassifiedError
}
