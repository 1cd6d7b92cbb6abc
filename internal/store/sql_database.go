// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/migrations"
)

// DB bundles the connection pool with the dialect specific query builder
// and error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnectDB opens the database selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite:// and file: use go-sqlite3.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		return NewConnectSQLite(ctx, strings.TrimPrefix(cfg.DSN, sqliteScheme), log)
	case strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded migrations for the connection dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func ping(ctx context.Context, conn *sql.DB, log *logger.Logger, funcName string) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", funcName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrConnectingToDatabase, err)
	}

	return nil
}
