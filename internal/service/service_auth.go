// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/survey-auth/internal/crypto"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/store"
	"github.com/MKhiriev/survey-auth/models"
)

// authService is the concrete implementation of AuthService.
// It expects requests that already passed validation; see
// AuthValidationService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokenService   TokenService

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Register checks email then username for conflicts, hashes the password,
// persists the account and issues a token for it.
//
// A conflict that slips past the pre-checks is caught by the unique
// constraints and reported the same way.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Register").Logger()

	emailTaken, err := a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Msg("error checking email")
		return models.AuthResponse{}, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		log.Info().Str("email", req.Email).Msg("email already registered")
		return models.AuthResponse{}, ErrEmailAlreadyExists
	}

	usernameTaken, err := a.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Msg("error checking username")
		return models.AuthResponse{}, fmt.Errorf("error checking username: %w", err)
	}
	if usernameTaken {
		log.Info().Str("username", req.Username).Msg("username already registered")
		return models.AuthResponse{}, ErrUsernameAlreadyExists
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.AuthResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return models.AuthResponse{}, creationError(err)
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return models.AuthResponse{User: user.Profile(), Token: token}, nil
}

// Login never tells the caller which of email or password was wrong;
// both failures wrap ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	user, err := a.findUser(ctx, req.Email)
	if err != nil {
		return models.AuthResponse{}, err
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrWrongPassword
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{User: user.Profile(), Token: token}, nil
}

func (a *authService) CurrentUser(ctx context.Context, email string) (models.User, error) {
	return a.findUser(ctx, email)
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	return a.tokenService.Verify(ctx, tokenString)
}

func (a *authService) findUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "authService.findUser").Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "authService.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

// creationError translates store conflicts into service conflicts and wraps
// everything else.
func creationError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameAlreadyExists
	case errors.Is(err, store.ErrUserAlreadyExists):
		return ErrAlreadyExists
	default:
		return fmt.Errorf("user creation ended with error: %w", err)
	}
}
