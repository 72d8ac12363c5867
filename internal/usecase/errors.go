package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by every usecase. Handlers map them onto HTTP
// statuses: invalid-input and bad-format before any write, not-found for
// unknown identities, internal for everything the caller cannot act on.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidLevel       = errors.New("invalid level")
	ErrInvalidTargetLevel = errors.New("invalid target level")
	ErrDepartmentExists   = errors.New("department already exists")
	ErrSkillExists        = errors.New("skill already exists")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrBadFormat          = errors.New("bad format")
	ErrInternal           = errors.New("internal error")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
