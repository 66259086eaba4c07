package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"zoo/pkg/platform/sentinel"
)

// Postgres SQLSTATE codes the stores care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeSerialization       = "40001"
	codeDeadlock            = "40P01"
	codeLockNotAvailable    = "55P03"
)

// MapError translates driver errors into sentinel errors, keeping the
// original error in the chain for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", sentinel.ErrNotFound, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeSerialization, codeDeadlock, codeLockNotAvailable:
			return fmt.Errorf("%w: %w", sentinel.ErrConflict, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %w", sentinel.ErrNotFound, err)
		case codeCheckViolation:
			return fmt.Errorf("%w: %w", sentinel.ErrInvalidState, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	return err
}
