package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn   *sqlx.DB
	upsert string
}

const (
	loadValueQuery   = `SELECT value FROM kv_store WHERE storage_key = ?`
	removeValueQuery = `DELETE FROM kv_store WHERE storage_key = ?`

	upsertMySQLQuery = `INSERT INTO kv_store (storage_key, value, updated_at) VALUES (?, ?, NOW())
ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = NOW()`

	upsertSQLiteQuery = `INSERT INTO kv_store (storage_key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(storage_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
)

// NewSQLStorage returns a Storage backed by the kv_store table. The upsert
// statement is picked from the connection's driver name.
func NewSQLStorage(conn *sqlx.DB) (*SQL, error) {
	var upsert string
	switch conn.DriverName() {
	case "mysql":
		upsert = upsertMySQLQuery
	case "sqlite", "sqlite3":
		upsert = upsertSQLiteQuery
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", conn.DriverName())
	}
	return &SQL{conn: conn, upsert: upsert}, nil
}

func (s *SQL) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	if err := s.conn.GetContext(ctx, &value, loadValueQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQL) Save(ctx context.Context, key string, value []byte) error {
	if _, err := s.conn.ExecContext(ctx, s.upsert, key, string(value)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Remove(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, removeValueQuery, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
