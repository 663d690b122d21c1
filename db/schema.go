package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AthletesCPFConstraint is the name Postgres gives the cpf uniqueness constraint.
const AthletesCPFConstraint = "atletas_cpf_key"

var schemas = map[string][]string{
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS atletas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nome TEXT NOT NULL,
			cpf TEXT NOT NULL UNIQUE,
			centro_treinamento TEXT NOT NULL,
			categoria TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_atletas_id ON atletas (id)`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS atletas (
			id SERIAL PRIMARY KEY,
			nome VARCHAR NOT NULL,
			cpf VARCHAR NOT NULL,
			centro_treinamento VARCHAR NOT NULL,
			categoria VARCHAR NOT NULL,
			CONSTRAINT ` + AthletesCPFConstraint + ` UNIQUE (cpf)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_atletas_id ON atletas (id)`,
	},
}

// EnsureSchema creates the atletas table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
