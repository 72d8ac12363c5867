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

type mockDeptRepo struct {
	list      []matrix.Department
	listErr   error
	getDept   matrix.Department
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createdName   string
	createdTarget int
}

func (m *mockDeptRepo) List(context.Context) ([]matrix.Department, error) {
	return m.list, m.listErr
}

func (m *mockDeptRepo) Get(context.Context, uuid.UUID) (matrix.Department, error) {
	return m.getDept, m.getErr
}

func (m *mockDeptRepo) Create(_ context.Context, _ uuid.UUID, name string, targetLevel int) error {
	m.createdName = name
	m.createdTarget = targetLevel
	return m.createErr
}

func (m *mockDeptRepo) Update(context.Context, uuid.UUID, *string, *int) error {
	return m.updateErr
}

func (m *mockDeptRepo) Delete(context.Context, uuid.UUID) error {
	return m.deleteErr
}

func TestCreateDepartment_EmptyName(t *testing.T) {
	uc := NewDepartmentUsecase(&mockDeptRepo{}, nil)
	if _, err := uc.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateDepartment_TargetOutOfRange(t *testing.T) {
	uc := NewDepartmentUsecase(&mockDeptRepo{}, nil)
	bad := 5
	if _, err := uc.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "Ops", TargetLevel: &bad}); !errors.Is(err, ErrInvalidTargetLevel) {
		t.Fatalf("expected ErrInvalidTargetLevel, got %v", err)
	}
}

func TestCreateDepartment_DefaultsTargetToThree(t *testing.T) {
	repo := &mockDeptRepo{getDept: matrix.Department{Name: "Ops", TargetLevel: 3}}
	uc := NewDepartmentUsecase(repo, nil)

	created, err := uc.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "  Ops  "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.createdName != "Ops" {
		t.Fatalf("expected trimmed name, got %q", repo.createdName)
	}
	if repo.createdTarget != matrix.DefaultTargetLevel {
		t.Fatalf("expected default target, got %d", repo.createdTarget)
	}
	if created.Name != "Ops" {
		t.Fatalf("unexpected department: %+v", created)
	}
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	repo := &mockDeptRepo{createErr: &pgconn.PgError{Code: "23505"}}
	uc := NewDepartmentUsecase(repo, nil)

	if _, err := uc.CreateDepartment(context.Background(), CreateDepartmentInput{Name: "Ops"}); !errors.Is(err, ErrDepartmentExists) {
		t.Fatalf("expected ErrDepartmentExists, got %v", err)
	}
}

func TestUpdateDepartment_NoFields(t *testing.T) {
	uc := NewDepartmentUsecase(&mockDeptRepo{}, nil)
	if _, err := uc.UpdateDepartment(context.Background(), uuid.New(), UpdateDepartmentInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteDepartment_NotFound(t *testing.T) {
	repo := &mockDeptRepo{deleteErr: repository.ErrDepartmentNotFound}
	uc := NewDepartmentUsecase(repo, nil)

	if _, err := uc.DeleteDepartment(context.Background(), uuid.New()); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDeleteDepartment_ReturnsRemaining(t *testing.T) {
	remaining := []matrix.Department{{Name: "Logistics"}}
	repo := &mockDeptRepo{list: remaining}
	uc := NewDepartmentUsecase(repo, nil)

	got, err := uc.DeleteDepartment(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Logistics" {
		t.Fatalf("expected remaining departments, got %+v", got)
	}
}

func TestListDepartments_RepoError(t *testing.T) {
	uc := NewDepartmentUsecase(&mockDeptRepo{listErr: errors.New("boom")}, nil)
	if _, err := uc.ListDepartments(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
