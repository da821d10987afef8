// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_fk=1")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// sqlmock has no expectations, goose's first query fails
	err = Migrate(context.Background(), db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil, "sqlite3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	err := Migrate(context.Background(), openSQLite(t), "mongodb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, "sqlite3"))

	for _, table := range []string{"users", "favorite_dishes", "favorite_restaurants"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, "sqlite3"))
	require.NoError(t, Migrate(ctx, db, "sqlite3"))
}

func TestMigrate_SQLiteEnforcesUniqueness(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, "sqlite3"))

	insert := "INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)"
	_, err := db.ExecContext(ctx, insert, "1", "alice", "alice@example.com", "h")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "2", "alice", "other@example.com", "h")
	assert.Error(t, err)

	_, err = db.ExecContext(ctx, insert, "3", "bob", "alice@example.com", "h")
	assert.Error(t, err)

	// several users without a phone are allowed
	_, err = db.ExecContext(ctx, insert, "4", "carol", "carol@example.com", "h")
	assert.NoError(t, err)
}
