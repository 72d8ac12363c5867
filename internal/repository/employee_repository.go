package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepository interface {
	DepartmentID(ctx context.Context, employeeID uuid.UUID) (uuid.UUID, error)
	Create(ctx context.Context, id uuid.UUID, departmentID uuid.UUID, name string, role string) error
	Update(ctx context.Context, id uuid.UUID, name *string, role *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) DepartmentID(ctx context.Context, employeeID uuid.UUID) (uuid.UUID, error) {
	var deptID uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT department_id FROM employees WHERE id = $1`, employeeID)
	if err := row.Scan(&deptID); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrEmployeeNotFound
		}
		return uuid.Nil, err
	}
	return deptID, nil
}

// Create inserts the employee and seeds a level-1 entry for every skill
// currently defined in the department, in one transaction.
func (r *PostgresEmployeeRepository) Create(ctx context.Context, id uuid.UUID, departmentID uuid.UUID, name string, role string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO employees (id, department_id, name, role) VALUES ($1, $2, $3, $4)`,
		id, departmentID, name, role,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO skill_levels (employee_id, skill_id, level_value)
		 SELECT $1, id, 1 FROM skills WHERE department_id = $2`,
		id, departmentID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, id uuid.UUID, name *string, role *string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE employees
		 SET name = COALESCE($2, name),
		     role = COALESCE($3, role),
		     updated_at = now()
		 WHERE id = $1`,
		id, name, role,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
