// Package sqlerr classifies database errors into client-facing HTTP errors.
//
// The router's error funnel calls Handle for errors that are not already
// *errs.HTTPError, so driver failures surface as consistent responses
// instead of leaking internals.
package sqlerr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DharaniDJ/zero2prod/internal/errs"
)

// PostgreSQL error codes handled explicitly.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
)

// Handle maps err onto a *errs.HTTPError. Unrecognized errors become a
// generic 500 so nothing internal reaches the client.
func Handle(err error) *errs.HTTPError {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found")
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewInternalServerError()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.NewConflictError("Resource already exists")
		case codeForeignKeyViolation:
			return errs.NewBadRequestError("Referenced resource does not exist", nil)
		case codeNotNullViolation, codeCheckViolation:
			return errs.NewBadRequestError("Invalid data", nil)
		}
	}

	return errs.NewInternalServerError()
}
