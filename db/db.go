package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Import postgres driver
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Connect opens the store described by databaseURL. postgres:// and
// postgresql:// URLs use lib/pq; anything else is a SQLite file path
// (optionally prefixed with sqlite://) that is created on first use.
func Connect(databaseURL string, timeout time.Duration) (*sqlx.DB, error) {
	driver, dsn, err := resolve(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	switch driver {
	case DriverPostgres:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	case DriverSQLite:
		// single writer; callers queue on the pool instead of on SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

func resolve(databaseURL string) (driver, dsn string, err error) {
	raw := strings.TrimSpace(databaseURL)
	if raw == "" {
		return "", "", fmt.Errorf("database url is required")
	}

	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		return DriverPostgres, raw, nil
	}

	path := raw
	switch {
	case strings.HasPrefix(path, "sqlite:///"):
		path = strings.TrimPrefix(path, "sqlite:///")
	case strings.HasPrefix(path, "sqlite://"):
		path = strings.TrimPrefix(path, "sqlite://")
	}
	if path == "" {
		return "", "", fmt.Errorf("sqlite database path is required")
	}

	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	return DriverSQLite, path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", nil
}
