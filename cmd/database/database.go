package database

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"github.com/muhammadheryan/fashion-directory/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Open connects to the configured SQL database and applies migrations.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Database.Driver {
	case "mysql":
		db, err = sqlx.ConnectContext(ctx, "mysql", cfg.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	case "sqlite":
		db, err = sqlx.ConnectContext(ctx, "sqlite", cfg.Database.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		// single writer
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Migrate runs the embedded goose migrations for the connection's dialect.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var dialect, dir string
	switch db.DriverName() {
	case "mysql":
		dialect, dir = "mysql", "mysql"
	case "sqlite", "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.UpContext(ctx, db.DB, dir)
}
