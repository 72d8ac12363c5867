package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skill-matrix/internal/domain/matrix"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/transfer"

	"github.com/google/uuid"
)

type mockTransferRepo struct {
	replaced [][]matrix.Department
	err      error
}

func (m *mockTransferRepo) Replace(_ context.Context, depts []matrix.Department) error {
	if m.err != nil {
		return m.err
	}
	m.replaced = append(m.replaced, depts)
	return nil
}

type staticSnapshots struct {
	depts []matrix.Department
	err   error
}

func (s staticSnapshots) ListDepartments(context.Context) ([]matrix.Department, error) {
	return s.depts, s.err
}

func TestExport_WrapsSnapshot(t *testing.T) {
	snap := staticSnapshots{depts: []matrix.Department{{
		ID:          uuid.New(),
		Name:        "Ops",
		TargetLevel: 3,
		Skills:      []string{"Lifting"},
	}}}
	uc := NewTransferUsecase(snap, &mockTransferRepo{}, &mockDeptRepo{}, nil)

	model, err := uc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if model.Version != transfer.ModelVersion || len(model.Departments) != 1 {
		t.Fatalf("unexpected model: %+v", model)
	}
	if model.Departments[0].Name != "Ops" {
		t.Fatalf("unexpected department: %+v", model.Departments[0])
	}
}

func TestImport_BadFormat_NoWrite(t *testing.T) {
	repo := &mockTransferRepo{}
	uc := NewTransferUsecase(staticSnapshots{}, repo, &mockDeptRepo{}, nil)

	err := uc.Import(context.Background(), transfer.Model{Version: 1})
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("expected ErrBadFormat, got %v", err)
	}
	if len(repo.replaced) != 0 {
		t.Fatalf("no write may happen on a malformed payload")
	}
}

func TestImport_ReplacesModel(t *testing.T) {
	repo := &mockTransferRepo{}
	uc := NewTransferUsecase(staticSnapshots{}, repo, &mockDeptRepo{}, nil)

	model := transfer.Model{
		Version: 1,
		Departments: []transfer.Department{{
			Name:        "Ops",
			TargetLevel: 2,
			Skills:      []string{"Lifting"},
			Employees: []transfer.Employee{{
				Name:   "Ada",
				Levels: map[string]string{"Lifting": "4"},
			}},
		}},
	}

	if err := uc.Import(context.Background(), model); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.replaced) != 1 {
		t.Fatalf("expected one replace, got %d", len(repo.replaced))
	}
	got := repo.replaced[0]
	if len(got) != 1 || got[0].Name != "Ops" || got[0].TargetLevel != 2 {
		t.Fatalf("unexpected replacement: %+v", got)
	}
	if got[0].Employees[0].Levels["Lifting"] != matrix.LevelFour {
		t.Fatalf("level token lost in import: %+v", got[0].Employees[0].Levels)
	}
}

func TestExportCSV_UnknownDepartment(t *testing.T) {
	depts := &mockDeptRepo{getErr: repository.ErrDepartmentNotFound}
	uc := NewTransferUsecase(staticSnapshots{}, &mockTransferRepo{}, depts, nil)

	if _, err := uc.ExportCSV(context.Background(), uuid.New()); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestExportCSV_RendersDepartment(t *testing.T) {
	depts := &mockDeptRepo{getDept: matrix.Department{
		Name:        "Ops",
		TargetLevel: 3,
		Skills:      []string{"Lifting"},
		Employees: []matrix.Employee{{
			Name:   "Ada",
			Role:   "Lead",
			Levels: map[string]matrix.Level{"Lifting": matrix.LevelThree},
		}},
	}}
	uc := NewTransferUsecase(staticSnapshots{}, &mockTransferRepo{}, depts, nil)

	data, err := uc.ExportCSV(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "Department,Employee,Role,Lifting") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Ops,Ada,Lead,3") {
		t.Fatalf("unexpected row: %q", out)
	}
}
