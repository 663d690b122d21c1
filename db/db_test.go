package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		url        string
		wantDriver string
		wantPrefix string
		wantErr    bool
	}{
		{name: "postgres url", url: "postgres://u:p@localhost/db", wantDriver: DriverPostgres, wantPrefix: "postgres://u:p@localhost/db"},
		{name: "postgresql url", url: "postgresql://u:p@localhost/db", wantDriver: DriverPostgres, wantPrefix: "postgresql://"},
		{name: "plain path", url: filepath.Join(dir, "plain.db"), wantDriver: DriverSQLite, wantPrefix: filepath.Join(dir, "plain.db") + "?"},
		{name: "sqlalchemy style", url: "sqlite:///" + filepath.Join(dir, "alchemy.db"), wantDriver: DriverSQLite, wantPrefix: filepath.Join(dir, "alchemy.db")},
		{name: "empty", url: "  ", wantErr: true},
		{name: "empty sqlite path", url: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn, err := resolve(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Contains(t, dsn, tt.wantPrefix)
		})
	}
}

func TestConnect_CreatesSQLiteFileLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "workout.db")

	conn, err := Connect(path, 5*time.Second)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, EnsureSchema(context.Background(), conn))

	_, err = os.Stat(path)
	require.NoError(t, err, "database file should exist after first use")

	var count int
	require.NoError(t, conn.Get(&count, "SELECT COUNT(*) FROM atletas"))
	assert.Zero(t, count)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	conn, err := Connect(filepath.Join(t.TempDir(), "workout.db"), 5*time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, conn))
	require.NoError(t, EnsureSchema(ctx, conn))
}
