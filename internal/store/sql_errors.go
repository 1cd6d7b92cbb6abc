// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the dialect independent kind of a failed statement.
type ErrorClassification int

const (
	// Unclassified covers every error the store has no special handling for.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a failed UNIQUE constraint.
	UniqueViolation
)

// Constraint names declared in the migrations.
const (
	usernameUniqueConstraint = "users_username_key"
	emailUniqueConstraint    = "users_email_key"
)

// ClassifiedError is the result of [ErrorClassificator.Classify]. Column is
// set for unique violations when the offending column is known.
type ClassifiedError struct {
	Class  ErrorClassification
	Column string
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to *pgconn.PgError and inspects its code and
// constraint name.
func (c *PostgresErrorClassifier) Classify(err error) ClassifiedError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return ClassifiedError{Class: Unclassified}
	}

	return ClassifiedError{Class: UniqueViolation, Column: columnFromConstraint(pgErr.ConstraintName)}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err to sqlite3.Error. SQLite reports the failed column in
// the message: "UNIQUE constraint failed: users.email".
func (c *SQLiteErrorClassifier) Classify(err error) ClassifiedError {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return ClassifiedError{Class: Unclassified}
	}

	column := ""
	if _, failed, found := strings.Cut(sqliteErr.Error(), "failed: "); found {
		column = strings.TrimPrefix(strings.TrimSpace(failed), usersTable+".")
	}

	return ClassifiedError{Class: UniqueViolation, Column: column}
}

func columnFromConstraint(constraint string) string {
	switch constraint {
	case emailUniqueConstraint:
		return columnEmail
	case usernameUniqueConstraint:
		return columnUsername
	default:
		return ""
	}
}

// uniqueViolationError converts a classified unique violation to the
// matching sentinel error.
func uniqueViolationError(classified ClassifiedError) error {
	switch classified.Column {
	case columnEmail:
		return ErrEmailAlreadyExists
	case columnUsername:
		return ErrUsernameAlreadyExists
	default:
		return ErrUserAlreadyExists
	}
}
