package usecase

import (
	"context"

	"skill-matrix/internal/domain/matrix"
	"skill-matrix/internal/domain/report"
)

// SnapshotProvider yields the current full data model; the department usecase
// implements it with cache-backed reads.
type SnapshotProvider interface {
	ListDepartments(ctx context.Context) ([]matrix.Department, error)
}

type ReportUsecase interface {
	Overview(ctx context.Context) (report.Overview, error)
}

type Report struct {
	snapshots SnapshotProvider
}

func NewReportUsecase(snapshots SnapshotProvider) *Report {
	return &Report{snapshots: snapshots}
}

// Overview recomputes every figure from the current snapshot; nothing is
// cached between calls beyond the snapshot itself.
func (u *Report) Overview(ctx context.Context) (report.Overview, error) {
	depts, err := u.snapshots.ListDepartments(ctx)
	if err != nil {
		return report.Overview{}, err
	}
	return report.BuildOverview(depts), nil
}
