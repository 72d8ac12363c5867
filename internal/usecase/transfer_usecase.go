package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"skill-matrix/internal/repository"
	"skill-matrix/internal/transfer"
	"skill-matrix/internal/ws"

	"github.com/google/uuid"
)

type TransferUsecase interface {
	Export(ctx context.Context) (transfer.Model, error)
	ExportCSV(ctx context.Context, departmentID uuid.UUID) ([]byte, error)
	Import(ctx context.Context, model transfer.Model) error
}

type Transfer struct {
	snapshots SnapshotProvider
	repo      repository.TransferRepository
	depts     repository.DepartmentRepository
	snapshot  *SnapshotCache
}

func NewTransferUsecase(
	snapshots SnapshotProvider,
	repo repository.TransferRepository,
	depts repository.DepartmentRepository,
	snapshot *SnapshotCache,
) *Transfer {
	return &Transfer{snapshots: snapshots, repo: repo, depts: depts, snapshot: snapshot}
}

func (u *Transfer) Export(ctx context.Context) (transfer.Model, error) {
	depts, err := u.snapshots.ListDepartments(ctx)
	if err != nil {
		return transfer.Model{}, err
	}
	return transfer.FromDomain(depts), nil
}

// ExportCSV renders one department in the tabular format; the department's
// current skill order defines the columns.
func (u *Transfer) ExportCSV(ctx context.Context, departmentID uuid.UUID) ([]byte, error) {
	if departmentID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	d, err := u.depts.Get(ctx, departmentID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, ErrInternal
	}

	var buf bytes.Buffer
	if err := transfer.WriteCSV(&buf, d); err != nil {
		return nil, ErrInternal
	}
	return buf.Bytes(), nil
}

// Import validates the payload fully before touching the store, then replaces
// the whole model in one transaction. On any failure existing state is left
// untouched.
func (u *Transfer) Import(ctx context.Context, model transfer.Model) error {
	depts, err := model.ToDomain()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	if err := u.repo.Replace(ctx, depts); err != nil {
		return ErrInternal
	}

	u.snapshot.Invalidate(ctx)
	ws.NotifyMatrixUpdated("model_imported", uuid.Nil)

	return nil
}
