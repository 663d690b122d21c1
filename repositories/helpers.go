package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// withConn acquires one pooled connection for the duration of fn and
// releases it on every exit path.
func withConn(ctx context.Context, db *sqlx.DB, fn func(conn *sqlx.Conn) error) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire database connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// withTx runs fn in a transaction on a scoped connection. The transaction is
// rolled back unless fn succeeds and the commit goes through.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	return withConn(ctx, db, func(conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() {
			_ = tx.Rollback() // no-op after a successful commit
		}()

		if err := fn(tx); err != nil {
			return err
		}
		return tx.Commit()
	})
}

// isUniqueViolation reports whether err is a uniqueness violation on the
// given Postgres constraint or SQLite table.column.
func isUniqueViolation(err error, pgConstraint, sqliteColumn string) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == pgConstraint
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}

	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, strings.ToLower(sqliteColumn))
}

// escapeLike escapes LIKE wildcards so the value matches literally with ESCAPE '\'.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
