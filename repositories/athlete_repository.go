package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/workout-api/db"
	"github.com/Dosada05/workout-api/models"
	"github.com/jmoiron/sqlx"
)

var (
	ErrAthleteCPFConflict = errors.New("athlete cpf conflict")
)

// NameMatch selects how the nome filter compares text.
type NameMatch int

const (
	NameMatchInsensitive NameMatch = iota
	NameMatchSensitive
)

type AthleteRepository interface {
	Create(ctx context.Context, athlete *models.Athlete) error
	FindAll(ctx context.Context, filter models.AthleteFilter) ([]models.Athlete, error)
}

type sqlAthleteRepository struct {
	db        *sqlx.DB
	nameMatch NameMatch
}

func NewSQLAthleteRepository(db *sqlx.DB, nameMatch NameMatch) AthleteRepository {
	return &sqlAthleteRepository{db: db, nameMatch: nameMatch}
}

func (r *sqlAthleteRepository) Create(ctx context.Context, athlete *models.Athlete) error {
	query := `INSERT INTO atletas (nome, cpf, centro_treinamento, categoria)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, tx.Rebind(query),
			athlete.Name,
			athlete.CPF,
			athlete.TrainingCenter,
			athlete.Category,
		).Scan(&athlete.ID)
	})
	if err != nil {
		if isUniqueViolation(err, db.AthletesCPFConstraint, "atletas.cpf") {
			return ErrAthleteCPFConflict
		}
		return fmt.Errorf("failed to insert athlete: %w", err)
	}
	return nil
}

func (r *sqlAthleteRepository) FindAll(ctx context.Context, filter models.AthleteFilter) ([]models.Athlete, error) {
	query := `SELECT id, nome, cpf, centro_treinamento, categoria
		FROM atletas
		WHERE 1=1`
	args := []interface{}{}

	if filter.Name != "" {
		query += " AND " + r.nameCondition()
		if r.nameMatch == NameMatchSensitive {
			args = append(args, filter.Name)
		} else {
			args = append(args, "%"+escapeLike(filter.Name)+"%")
		}
	}
	if filter.CPF != "" {
		query += " AND cpf = ?"
		args = append(args, filter.CPF)
	}
	query += " ORDER BY id ASC"

	athletes := make([]models.Athlete, 0)
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &athletes, conn.Rebind(query), args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

func (r *sqlAthleteRepository) nameCondition() string {
	if r.nameMatch == NameMatchInsensitive {
		return `LOWER(nome) LIKE LOWER(?) ESCAPE '\'`
	}
	if r.db.DriverName() == db.DriverPostgres {
		return "strpos(nome, ?) > 0"
	}
	return "instr(nome, ?) > 0"
}
