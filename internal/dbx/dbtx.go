// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx,
// and the translation of driver errors into the common sentinel errors.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/courtside/courtside/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// IsUniqueViolation reports whether err carries a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

// TranslateError maps a driver error onto the repository error taxonomy:
//
//   - sql.ErrNoRows      -> common.ErrorNotFound
//   - unique_violation   -> common.ErrConstraintViolation
//   - anything else      -> common.ErrStoreUnavailable
//
// The original error stays in the chain for logging.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("db error: %w: %w", common.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("db error: %w: %w", common.ErrStoreUnavailable, err)
	}
}
