package seeder

import (
	"context"
	"fmt"
	"log"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
)

// Run creates a sample department when the database holds none, so a fresh
// deployment renders a populated dashboard. It is a no-op on any existing
// data.
func Run(ctx context.Context, db database.DB, logger *log.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	deptID := uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO departments (id, name, target_level) VALUES ($1, $2, $3)`,
		deptID, "Production", 3,
	); err != nil {
		return err
	}

	skillNames := []string{"Welding", "Assembly", "Quality Control"}
	skillIDs := make([]uuid.UUID, len(skillNames))
	for i, name := range skillNames {
		skillIDs[i] = uuid.New()
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (id, department_id, name, display_order) VALUES ($1, $2, $3, $4)`,
			skillIDs[i], deptID, name, i+1,
		); err != nil {
			return err
		}
	}

	employees := []struct {
		name   string
		role   string
		levels []int // by skill index; 0 means exempt
	}{
		{"Sam Carter", "Line Lead", []int{4, 3, 2}},
		{"Riley Morgan", "Technician", []int{2, 2, 1}},
		{"Jordan Blake", "Inspector", []int{0, 1, 4}},
	}

	for _, e := range employees {
		empID := uuid.New()
		if _, err := tx.Exec(ctx,
			`INSERT INTO employees (id, department_id, name, role) VALUES ($1, $2, $3, $4)`,
			empID, deptID, e.name, e.role,
		); err != nil {
			return err
		}
		for i, lvl := range e.levels {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skill_levels (employee_id, skill_id, level_value) VALUES ($1, $2, $3)`,
				empID, skillIDs[i], lvl,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if logger != nil {
		logger.Printf("Seeder | created demo department with %d skills and %d employees", len(skillNames), len(employees))
	}
	return nil
}
