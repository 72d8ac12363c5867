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

type SetLevelInput struct {
	EmployeeID uuid.UUID
	SkillName  string
	Level      string
}

type SkillUsecase interface {
	AddSkill(ctx context.Context, departmentID uuid.UUID, name string) (matrix.Department, error)
	DeleteSkill(ctx context.Context, departmentID uuid.UUID, name string) (matrix.Department, error)
	SetLevel(ctx context.Context, in SetLevelInput) (matrix.Department, error)
}

type Skill struct {
	skills    repository.SkillRepository
	levels    repository.LevelRepository
	employees repository.EmployeeRepository
	depts     repository.DepartmentRepository
	snapshot  *SnapshotCache
}

func NewSkillUsecase(
	skills repository.SkillRepository,
	levels repository.LevelRepository,
	employees repository.EmployeeRepository,
	depts repository.DepartmentRepository,
	snapshot *SnapshotCache,
) *Skill {
	return &Skill{skills: skills, levels: levels, employees: employees, depts: depts, snapshot: snapshot}
}

// AddSkill appends the skill at the end of the department's ordered list.
// Names are matched exactly (case-sensitive) after whitespace trimming, both
// here and in lookup/delete.
func (u *Skill) AddSkill(ctx context.Context, departmentID uuid.UUID, name string) (matrix.Department, error) {
	name = strings.TrimSpace(name)
	if departmentID == uuid.Nil || name == "" {
		return matrix.Department{}, ErrInvalidInput
	}

	if err := u.skills.Add(ctx, uuid.New(), departmentID, name); err != nil {
		switch {
		case isUniqueViolation(err):
			return matrix.Department{}, ErrSkillExists
		case isForeignKeyViolation(err):
			return matrix.Department{}, ErrDepartmentNotFound
		default:
			return matrix.Department{}, ErrInternal
		}
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("skill_added", departmentID)

	return u.owningDepartment(ctx, departmentID)
}

// DeleteSkill removes the skill from the department's ordered list; every
// employee's entry for it goes with the row.
func (u *Skill) DeleteSkill(ctx context.Context, departmentID uuid.UUID, name string) (matrix.Department, error) {
	name = strings.TrimSpace(name)
	if departmentID == uuid.Nil || name == "" {
		return matrix.Department{}, ErrInvalidInput
	}

	if err := u.skills.Delete(ctx, departmentID, name); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return matrix.Department{}, ErrSkillNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("skill_deleted", departmentID)

	return u.owningDepartment(ctx, departmentID)
}

// SetLevel upserts the rating for an (employee, skill) pair. Setting the same
// level twice is a no-op. The skill must exist in the employee's own
// department.
func (u *Skill) SetLevel(ctx context.Context, in SetLevelInput) (matrix.Department, error) {
	skillName := strings.TrimSpace(in.SkillName)
	if in.EmployeeID == uuid.Nil || skillName == "" {
		return matrix.Department{}, ErrInvalidInput
	}

	lvl, err := matrix.ParseLevel(in.Level)
	if err != nil {
		return matrix.Department{}, ErrInvalidLevel
	}

	deptID, err := u.employees.DepartmentID(ctx, in.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matrix.Department{}, ErrEmployeeNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	skillID, err := u.skills.IDByName(ctx, deptID, skillName)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return matrix.Department{}, ErrSkillNotFound
		}
		return matrix.Department{}, ErrInternal
	}

	if err := u.levels.Upsert(ctx, in.EmployeeID, skillID, lvl.Value()); err != nil {
		return matrix.Department{}, ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("level_set", deptID)

	return u.owningDepartment(ctx, deptID)
}

func (u *Skill) owningDepartment(ctx context.Context, deptID uuid.UUID) (matrix.Department, error) {
	d, err := u.depts.Get(ctx, deptID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return matrix.Department{}, ErrDepartmentNotFound
		}
		return matrix.Department{}, ErrInternal
	}
	return d, nil
}
