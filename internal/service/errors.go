// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is returned when a request fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAlreadyExists is the parent of every registration conflict.
	ErrAlreadyExists         = errors.New("user already exists")
	ErrEmailAlreadyExists    = fmt.Errorf("email: %w", ErrAlreadyExists)
	ErrUsernameAlreadyExists = fmt.Errorf("username: %w", ErrAlreadyExists)

	// ErrInvalidCredentials is the parent of every login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = fmt.Errorf("user not found: %w", ErrInvalidCredentials)
	ErrWrongPassword      = fmt.Errorf("invalid password: %w", ErrInvalidCredentials)

	// ErrTokenIsExpiredOrInvalid is the single result of a failed token
	// verification, whatever the cause.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrEmptyAppVersion means APP_VERSION was blank after trimming.
	ErrEmptyAppVersion = errors.New("app version is empty")
)
