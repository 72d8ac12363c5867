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

type CreateDepartmentInput struct {
	Name        string
	TargetLevel *int
}

type UpdateDepartmentInput struct {
	Name        *string
	TargetLevel *int
}

type DepartmentUsecase interface {
	ListDepartments(ctx context.Context) ([]matrix.Department, error)
	CreateDepartment(ctx context.Context, in CreateDepartmentInput) (matrix.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, in UpdateDepartmentInput) (matrix.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) ([]matrix.Department, error)
}

type Department struct {
	repo     repository.DepartmentRepository
	snapshot *SnapshotCache
}

func NewDepartmentUsecase(repo repository.DepartmentRepository, snapshot *SnapshotCache) *Department {
	return &Department{repo: repo, snapshot: snapshot}
}

// ListDepartments serves the full model snapshot, preferring the cache.
func (u *Department) ListDepartments(ctx context.Context) ([]matrix.Department, error) {
	if depts, ok := u.snapshot.Get(ctx); ok {
		return depts, nil
	}

	depts, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	u.snapshot.Set(ctx, depts)
	return depts, nil
}

func (u *Department) CreateDepartment(ctx context.Context, in CreateDepartmentInput) (matrix.Department, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return matrix.Department{}, ErrInvalidInput
	}

	target := matrix.DefaultTargetLevel
	if in.TargetLevel != nil {
		target = *in.TargetLevel
	}
	if !matrix.ValidTargetLevel(target) {
		return matrix.Department{}, ErrInvalidTargetLevel
	}

	id := uuid.New()
	if err := u.repo.Create(ctx, id, name, target); err != nil {
		if isUniqueViolation(err) {
			return matrix.Department{}, ErrDepartmentExists
		}
		return matrix.Department{}, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("department_created", id)

	return u.reload(ctx, id)
}

func (u *Department) UpdateDepartment(ctx context.Context, id uuid.UUID, in UpdateDepartmentInput) (matrix.Department, error) {
	if id == uuid.Nil {
		return matrix.Department{}, ErrInvalidInput
	}
	if in.Name == nil && in.TargetLevel == nil {
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
	if in.TargetLevel != nil && !matrix.ValidTargetLevel(*in.TargetLevel) {
		return matrix.Department{}, ErrInvalidTargetLevel
	}

	if err := u.repo.Update(ctx, id, name, in.TargetLevel); err != nil {
		switch {
		case errors.Is(err, repository.ErrDepartmentNotFound):
			return matrix.Department{}, ErrDepartmentNotFound
		case isUniqueViolation(err):
			return matrix.Department{}, ErrDepartmentExists
		default:
			return matrix.Department{}, ErrInternal
		}
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("department_updated", id)

	return u.reload(ctx, id)
}

// DeleteDepartment cascades to the department's skills, employees and levels,
// and returns the remaining departments so a client viewing the deleted one
// can fall back without a second round trip.
func (u *Department) DeleteDepartment(ctx context.Context, id uuid.UUID) ([]matrix.Department, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidInput
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("department_deleted", id)

	remaining, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	u.snapshot.Set(ctx, remaining)
	return remaining, nil
}

func (u *Department) reload(ctx context.Context, id uuid.UUID) (matrix.Department, error) {
	d, err := u.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return matrix.Department{}, ErrDepartmentNotFound
		}
		return matrix.Department{}, ErrInternal
	}
	return d, nil
}
