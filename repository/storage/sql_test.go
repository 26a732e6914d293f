package storage

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv_store (
  storage_key TEXT NOT NULL PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func TestSQL_LoadAbsentKey(t *testing.T) {
	s, err := NewSQLStorage(setupDB(t))
	require.NoError(t, err)

	got, err := s.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQL_SaveOverwritesWholeValue(t *testing.T) {
	db := setupDB(t)
	s, err := NewSQLStorage(db)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", []byte(`[1,2,3]`)))
	require.NoError(t, s.Save(ctx, "k", []byte(`[4]`)))

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[4]`, string(got))

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM kv_store`))
	assert.Equal(t, 1, rows)
}

func TestSQL_Remove(t *testing.T) {
	s, err := NewSQLStorage(setupDB(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", []byte(`{}`)))
	require.NoError(t, s.Remove(ctx, "k"))
	// absent key
	require.NoError(t, s.Remove(ctx, "k"))

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewSQLStorage_UnsupportedDriver(t *testing.T) {
	db := sqlx.NewDb(nil, "postgres")

	_, err := NewSQLStorage(db)
	assert.Error(t, err)
}
