// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a relational connection together with the dialect-specific query
// builder settings. PostgreSQL uses $n placeholders, SQLite uses ?.
type DB struct {
	*sql.DB
	backend     config.Backend
	placeholder sq.PlaceholderFormat
	logger      *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.backend))
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
