// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It works against both PostgreSQL and SQLite; placeholders and error
// classification come from the [DB] it was built with.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsBy(ctx, columnEmail, email)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.existsBy(ctx, columnUsername, username)
}

func (r *userRepository) existsBy(ctx context.Context, column, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := countUsersBy(r.db.builder, column, value)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.existsBy").Str("column", column).Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUserByEmail(r.db.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// CreateUser persists a new user record and returns it with the
// store-assigned ID and CreatedAt.
//
// Error handling:
//   - unique violation → [ErrEmailAlreadyExists], [ErrUsernameAlreadyExists]
//     or [ErrUserAlreadyExists] depending on the constraint.
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	// timestamptz keeps microseconds
	createdAt := r.now().UTC().Truncate(time.Microsecond)

	query, args, err := insertUser(r.db.builder, user, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		classified := r.db.errorClassificator.Classify(err)
		if classified.Class == UniqueViolation {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("column", classified.Column).Msg("unique constraint violated")
			return models.User{}, uniqueViolationError(classified)
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	user.CreatedAt = createdAt

	return user, nil
}
