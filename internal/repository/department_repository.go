package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-matrix/internal/database"
	"skill-matrix/internal/domain/matrix"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrDepartmentNotFound = errors.New("department not found")

type DepartmentRepository interface {
	List(ctx context.Context) ([]matrix.Department, error)
	Get(ctx context.Context, id uuid.UUID) (matrix.Department, error)
	Create(ctx context.Context, id uuid.UUID, name string, targetLevel int) error
	Update(ctx context.Context, id uuid.UUID, name *string, targetLevel *int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresDepartmentRepository struct {
	db database.DB
}

func NewPostgresDepartmentRepository(db database.DB) *PostgresDepartmentRepository {
	return &PostgresDepartmentRepository{db: db}
}

// List returns full department snapshots in creation order, matching the
// shape the dashboard renders.
func (r *PostgresDepartmentRepository) List(ctx context.Context) ([]matrix.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM departments ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]matrix.Department, 0, len(ids))
	for _, id := range ids {
		d, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrDepartmentNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *PostgresDepartmentRepository) Get(ctx context.Context, id uuid.UUID) (matrix.Department, error) {
	var d matrix.Department
	row := r.db.QueryRow(ctx, `SELECT id, name, target_level FROM departments WHERE id = $1`, id)
	if err := row.Scan(&d.ID, &d.Name, &d.TargetLevel); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return matrix.Department{}, ErrDepartmentNotFound
		}
		return matrix.Department{}, err
	}

	skills, err := r.skillNames(ctx, id)
	if err != nil {
		return matrix.Department{}, err
	}
	d.Skills = skills

	emps, err := r.employees(ctx, id)
	if err != nil {
		return matrix.Department{}, err
	}
	d.Employees = emps

	return d, nil
}

func (r *PostgresDepartmentRepository) Create(ctx context.Context, id uuid.UUID, name string, targetLevel int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO departments (id, name, target_level) VALUES ($1, $2, $3)`,
		id, name, targetLevel,
	)
	return err
}

// Update applies a partial update; nil fields keep their stored value.
func (r *PostgresDepartmentRepository) Update(ctx context.Context, id uuid.UUID, name *string, targetLevel *int) error {
	n, err := r.db.Exec(ctx,
		`UPDATE departments
		 SET name = COALESCE($2, name),
		     target_level = COALESCE($3, target_level),
		     updated_at = now()
		 WHERE id = $1`,
		id, name, targetLevel,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

// Delete removes the department; skills, employees and levels go with it via
// FK cascade.
func (r *PostgresDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

func (r *PostgresDepartmentRepository) skillNames(ctx context.Context, deptID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name FROM skills WHERE department_id = $1 ORDER BY display_order ASC`,
		deptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresDepartmentRepository) employees(ctx context.Context, deptID uuid.UUID) ([]matrix.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, role FROM employees WHERE department_id = $1 ORDER BY created_at ASC`,
		deptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emps := make([]matrix.Employee, 0)
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var e matrix.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role); err != nil {
			return nil, err
		}
		e.Levels = map[string]matrix.Level{}
		index[e.ID] = len(emps)
		emps = append(emps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lrows, err := r.db.Query(ctx,
		`SELECT sl.employee_id, s.name, sl.level_value
		 FROM skill_levels sl
		 JOIN skills s ON s.id = sl.skill_id
		 JOIN employees e ON e.id = sl.employee_id
		 WHERE e.department_id = $1`,
		deptID,
	)
	if err != nil {
		return nil, err
	}
	defer lrows.Close()

	for lrows.Next() {
		var empID uuid.UUID
		var skillName string
		var value int
		if err := lrows.Scan(&empID, &skillName, &value); err != nil {
			return nil, err
		}
		lvl, err := matrix.LevelFromValue(value)
		if err != nil {
			return nil, err
		}
		if i, ok := index[empID]; ok {
			emps[i].Levels[skillName] = lvl
		}
	}
	if err := lrows.Err(); err != nil {
		return nil, err
	}

	return emps, nil
}
