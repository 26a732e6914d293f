package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLite(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	// running twice is a no-op
	require.NoError(t, Migrate(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM kv_store`))
	assert.Equal(t, 0, count)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "oracle"}}

	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}

func TestOpen_SQLiteFile(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: t.TempDir() + "/directory.db",
	}}

	db, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO kv_store (storage_key, value) VALUES ('k', 'v')`)
	assert.NoError(t, err)
}
