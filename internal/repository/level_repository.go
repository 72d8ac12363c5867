package repository

import (
	"context"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
)

type LevelRepository interface {
	Upsert(ctx context.Context, employeeID uuid.UUID, skillID uuid.UUID, value int) error
}

type PostgresLevelRepository struct {
	db database.DB
}

func NewPostgresLevelRepository(db database.DB) *PostgresLevelRepository {
	return &PostgresLevelRepository{db: db}
}

// Upsert sets the level for an (employee, skill) pair. Writing the same value
// twice leaves the row unchanged apart from its timestamp.
func (r *PostgresLevelRepository) Upsert(ctx context.Context, employeeID uuid.UUID, skillID uuid.UUID, value int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_levels (employee_id, skill_id, level_value)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (employee_id, skill_id)
		 DO UPDATE SET level_value = EXCLUDED.level_value, updated_at = now()`,
		employeeID, skillID, value,
	)
	return err
}
