package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/domain/matrix"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/ws"

	"github.com/google/uuid"
)

type AddEmployeeInput struct {
	DepartmentID uuid.UUID
	Name         string
	Role         string
}

type UpdateEmployeeInput struct {
	Name *string
	Role *string
}

// Every employee mutation returns the updated owning department, the shape the
// dashboard applies to its local state.
type EmployeeUsecase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (matrix.Department, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, in UpdateEmployeeInput) (matrix.Department, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) (matrix.Department, error)
}

type Employee struct {
	repo     repository.EmployeeRepository
	depts    repository.DepartmentRepository
	snapshot *SnapshotCache
}

func NewEmployeeUsecase(repo repository.EmployeeRepository, depts repository.DepartmentRepository, snapshot *SnapshotCache) *Employee {
	return &Employee{repo: repo, depts: depts, snapshot: snapshot}
}

// AddEmployee creates the employee with a level-1 entry for every skill
// currently defined in the department.
func (u *Employee) AddEmployee(ctx context.Context, in AddEmployeeInput) (matrix.Department, error) {
	name := strings.TrimSpace(in.Name)
	if in.DepartmentID == uuid.Nil || name == "" {
		return matrix.Department{}, ErrInvalidInput
	}

	id := uuid.New()
	if err := u.repo.Create(ctx, id, in.DepartmentID, name, strings.TrimSpace(in.Role)); err != nil {
		if isForeignKeyViolation(err) {
			return matrix.Department{}, ErrDepartmentNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("employee_added", in.DepartmentID)

	return u.owningDepartment(ctx, in.DepartmentID)
}

func (u *Employee) UpdateEmployee(ctx context.Context, id uuid.UUID, in UpdateEmployeeInput) (matrix.Department, error) {
	if id == uuid.Nil {
		return matrix.Department{}, ErrInvalidInput
	}
	if in.Name == nil && in.Role == nil {
		return matrix.Department{}, ErrInvalidInput
	}

	var name *string
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if trimmed == "" {
			return matrix.Department{}, ErrInvalidInput
		}
		name = &trimmed
	}
	var role *string
	if in.Role != nil {
		trimmed := strings.TrimSpace(*in.Role)
		role = &trimmed
	}

	deptID, err := u.repo.DepartmentID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matrix.Department{}, ErrEmployeeNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	if err := u.repo.Update(ctx, id, name, role); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matrix.Department{}, ErrEmployeeNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("employee_updated", deptID)

	return u.owningDepartment(ctx, deptID)
}

func (u *Employee) DeleteEmployee(ctx context.Context, id uuid.UUID) (matrix.Department, error) {
	if id == uuid.Nil {
		return matrix.Department{}, ErrInvalidInput
	}

	deptID, err := u.repo.DepartmentID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matrix.Department{}, ErrEmployeeNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matrix.Department{}, ErrEmployeeNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("employee_deleted", deptID)

	return u.owningDepartment(ctx, deptID)
}

func (u *Employee) owningDepartment(ctx context.Context, deptID uuid.UUID) (matrix.Department, error) {
	d, err := u.depts.Get(ctx, deptID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return matrix.Department{}, ErrDepartmentNotFound
		}
		return matrix.Department{}, ErrInternal
	}
	return d, nil
}
