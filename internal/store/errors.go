// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT violates a unique
	// constraint whose column could not be determined.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEmailAlreadyExists wraps [ErrUserAlreadyExists] for the email column.
	ErrEmailAlreadyExists = fmt.Errorf("email: %w", ErrUserAlreadyExists)

	// ErrUsernameAlreadyExists wraps [ErrUserAlreadyExists] for the username column.
	ErrUsernameAlreadyExists = fmt.Errorf("username: %w", ErrUserAlreadyExists)

	// ErrUserNotFound is returned when a lookup matches no account.
	ErrUserNotFound = errors.New("user was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrScanningRow          = errors.New("failed to scan user row")
	ErrUnsupportedDSN       = errors.New("unsupported database DSN")
	ErrConnectingToDatabase = errors.New("error connecting to database")
)
