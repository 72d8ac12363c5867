package repository

import (
	"context"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/matrix"

	"github.com/google/uuid"
)

type TransferRepository interface {
	Replace(ctx context.Context, departments []matrix.Department) error
}

type PostgresTransferRepository struct {
	db database.DB
}

func NewPostgresTransferRepository(db database.DB) *PostgresTransferRepository {
	return &PostgresTransferRepository{db: db}
}

// Replace swaps the entire data model inside one transaction: nothing is
// applied unless every row inserts cleanly. Identities are regenerated.
func (r *PostgresTransferRepository) Replace(ctx context.Context, departments []matrix.Department) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM departments`); err != nil {
		return err
	}

	for _, d := range departments {
		deptID := uuid.New()
		_, err := tx.Exec(ctx,
			`INSERT INTO departments (id, name, target_level) VALUES ($1, $2, $3)`,
			deptID, d.Name, d.TargetLevel,
		)
		if err != nil {
			return err
		}

		skillIDs := make(map[string]uuid.UUID, len(d.Skills))
		for order, skill := range d.Skills {
			sid := uuid.New()
			skillIDs[skill] = sid
			_, err := tx.Exec(ctx,
				`INSERT INTO skills (id, department_id, name, display_order) VALUES ($1, $2, $3, $4)`,
				sid, deptID, skill, order+1,
			)
			if err != nil {
				return err
			}
		}

		for _, emp := range d.Employees {
			empID := uuid.New()
			_, err := tx.Exec(ctx,
				`INSERT INTO employees (id, department_id, name, role) VALUES ($1, $2, $3, $4)`,
				empID, deptID, emp.Name, emp.Role,
			)
			if err != nil {
				return err
			}

			for skill, lvl := range emp.Levels {
				sid, ok := skillIDs[skill]
				if !ok {
					// Entries for skills the department no longer lists are
					// dropped rather than resurrected.
					continue
				}
				_, err := tx.Exec(ctx,
					`INSERT INTO skill_levels (employee_id, skill_id, level_value) VALUES ($1, $2, $3)`,
					empID, sid, lvl.Value(),
				)
				if err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit(ctx)
}
