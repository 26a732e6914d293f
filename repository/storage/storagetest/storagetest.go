// Package storagetest builds throwaway storage backends for tests.
package storagetest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE kv_store (
  storage_key TEXT NOT NULL PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// NewSQLite returns a storage backed by a private in-memory SQLite database.
func NewSQLite(t testing.TB) *storage.SQL {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a new database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	s, err := storage.NewSQLStorage(db)
	require.NoError(t, err)
	return s
}

// Put writes a raw value, bypassing any repository encoding.
func Put(t testing.TB, s storage.Storage, key, value string) {
	t.Helper()
	require.NoError(t, s.Save(context.Background(), key, []byte(value)))
}
