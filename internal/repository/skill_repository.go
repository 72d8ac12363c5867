package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Add(ctx context.Context, id uuid.UUID, departmentID uuid.UUID, name string) error
	Delete(ctx context.Context, departmentID uuid.UUID, name string) error
	IDByName(ctx context.Context, departmentID uuid.UUID, name string) (uuid.UUID, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// Add appends the skill at the end of the department's order and seeds a
// level-1 entry for every existing employee, in one transaction.
func (r *PostgresSkillRepository) Add(ctx context.Context, id uuid.UUID, departmentID uuid.UUID, name string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO skills (id, department_id, name, display_order)
		 VALUES ($1, $2, $3,
		   (SELECT COALESCE(MAX(display_order), 0) + 1 FROM skills WHERE department_id = $2))`,
		id, departmentID, name,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO skill_levels (employee_id, skill_id, level_value)
		 SELECT id, $1, 1 FROM employees WHERE department_id = $2`,
		id, departmentID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the skill row; level entries cascade with it.
func (r *PostgresSkillRepository) Delete(ctx context.Context, departmentID uuid.UUID, name string) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM skills WHERE department_id = $1 AND name = $2`,
		departmentID, name,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) IDByName(ctx context.Context, departmentID uuid.UUID, name string) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`SELECT id FROM skills WHERE department_id = $1 AND name = $2`,
		departmentID, name,
	)
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrSkillNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}
