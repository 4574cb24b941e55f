package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, see
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError reports whether err is a postgres unique
// constraint violation.
func IsUniqueViolationError(err error) bool {
	return pgErrCode(err) == pgCodeUniqueViolation
}

// IsForeignKeyViolationError reports whether err is a postgres foreign
// key constraint violation.
func IsForeignKeyViolationError(err error) bool {
	return pgErrCode(err) == pgCodeForeignKeyViolation
}
