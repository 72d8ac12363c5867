package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-matrix/internal/domain/matrix"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type mockSkillRepo struct {
	addErr    error
	deleteErr error
	skillID   uuid.UUID
	idErr     error
}

func (m *mockSkillRepo) Add(context.Context, uuid.UUID, uuid.UUID, string) error { return m.addErr }
func (m *mockSkillRepo) Delete(context.Context, uuid.UUID, string) error         { return m.deleteErr }
func (m *mockSkillRepo) IDByName(context.Context, uuid.UUID, string) (uuid.UUID, error) {
	return m.skillID, m.idErr
}

type mockLevelRepo struct {
	upserts []int
	err     error
}

func (m *mockLevelRepo) Upsert(_ context.Context, _ uuid.UUID, _ uuid.UUID, value int) error {
	m.upserts = append(m.upserts, value)
	return m.err
}

type mockEmpRepo struct {
	deptID    uuid.UUID
	deptIDErr error
	createErr error
	updateErr error
	deleteErr error
}

func (m *mockEmpRepo) DepartmentID(context.Context, uuid.UUID) (uuid.UUID, error) {
	return m.deptID, m.deptIDErr
}
func (m *mockEmpRepo) Create(context.Context, uuid.UUID, uuid.UUID, string, string) error {
	return m.createErr
}
func (m *mockEmpRepo) Update(context.Context, uuid.UUID, *string, *string) error {
	return m.updateErr
}
func (m *mockEmpRepo) Delete(context.Context, uuid.UUID) error { return m.deleteErr }

func newSkillUsecase(skills *mockSkillRepo, levels *mockLevelRepo, emps *mockEmpRepo, depts *mockDeptRepo) *Skill {
	if skills == nil {
		skills = &mockSkillRepo{}
	}
	if levels == nil {
		levels = &mockLevelRepo{}
	}
	if emps == nil {
		emps = &mockEmpRepo{}
	}
	if depts == nil {
		depts = &mockDeptRepo{}
	}
	return NewSkillUsecase(skills, levels, emps, depts, nil)
}

func TestAddSkill_EmptyName(t *testing.T) {
	uc := newSkillUsecase(nil, nil, nil, nil)
	if _, err := uc.AddSkill(context.Background(), uuid.New(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddSkill_Duplicate(t *testing.T) {
	uc := newSkillUsecase(&mockSkillRepo{addErr: &pgconn.PgError{Code: "23505"}}, nil, nil, nil)
	if _, err := uc.AddSkill(context.Background(), uuid.New(), "Welding"); !errors.Is(err, ErrSkillExists) {
		t.Fatalf("expected ErrSkillExists, got %v", err)
	}
}

func TestAddSkill_UnknownDepartment(t *testing.T) {
	uc := newSkillUsecase(&mockSkillRepo{addErr: &pgconn.PgError{Code: "23503"}}, nil, nil, nil)
	if _, err := uc.AddSkill(context.Background(), uuid.New(), "Welding"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDeleteSkill_NotFound(t *testing.T) {
	uc := newSkillUsecase(&mockSkillRepo{deleteErr: repository.ErrSkillNotFound}, nil, nil, nil)
	if _, err := uc.DeleteSkill(context.Background(), uuid.New(), "Welding"); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSetLevel_InvalidToken(t *testing.T) {
	uc := newSkillUsecase(nil, nil, nil, nil)
	_, err := uc.SetLevel(context.Background(), SetLevelInput{
		EmployeeID: uuid.New(),
		SkillName:  "Welding",
		Level:      "9",
	})
	if !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestSetLevel_SkillNotInDepartment(t *testing.T) {
	uc := newSkillUsecase(
		&mockSkillRepo{idErr: repository.ErrSkillNotFound},
		nil,
		&mockEmpRepo{deptID: uuid.New()},
		nil,
	)
	_, err := uc.SetLevel(context.Background(), SetLevelInput{
		EmployeeID: uuid.New(),
		SkillName:  "Welding",
		Level:      "3",
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSetLevel_Idempotent(t *testing.T) {
	deptID := uuid.New()
	levels := &mockLevelRepo{}
	depts := &mockDeptRepo{getDept: matrix.Department{ID: deptID, Name: "Ops", TargetLevel: 3}}
	uc := newSkillUsecase(
		&mockSkillRepo{skillID: uuid.New()},
		levels,
		&mockEmpRepo{deptID: deptID},
		depts,
	)

	in := SetLevelInput{EmployeeID: uuid.New(), SkillName: "Welding", Level: "X"}
	first, err := uc.SetLevel(context.Background(), in)
	if err != nil {
		t.Fatalf("first set: %v", err)
	}
	second, err := uc.SetLevel(context.Background(), in)
	if err != nil {
		t.Fatalf("second set: %v", err)
	}

	if len(levels.upserts) != 2 || levels.upserts[0] != 0 || levels.upserts[1] != 0 {
		t.Fatalf("expected two upserts of value 0, got %v", levels.upserts)
	}
	if first.Name != second.Name || first.TargetLevel != second.TargetLevel {
		t.Fatalf("repeated set produced a different department: %+v vs %+v", first, second)
	}
}
