// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/survey-auth/models"
)

const (
	usersTable = "users"

	columnID           = "id"
	columnUsername     = "username"
	columnEmail        = "email"
	columnPasswordHash = "password_hash"
	columnCreatedAt    = "created_at"
)

var userColumns = []string{columnID, columnUsername, columnEmail, columnPasswordHash, columnCreatedAt}

// countUsersBy builds SELECT COUNT(1) FROM users WHERE <column> = ?.
func countUsersBy(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select("COUNT(1)").
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func findUserByEmail(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{columnEmail: email}).
		Limit(1).
		ToSql()
}

// insertUser builds the INSERT returning the generated id. createdAt is
// written explicitly so both dialects store the same value the caller
// returns.
func insertUser(b sq.StatementBuilderType, user models.User, createdAt time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(columnUsername, columnEmail, columnPasswordHash, columnCreatedAt).
		Values(user.Username, user.Email, user.PasswordHash, createdAt).
		Suffix("RETURNING " + columnID).
		ToSql()
}
