package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrCheckViolation      = "23514"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsForeignKeyViolation - запись ссылается на строку, которой уже нет.
func IsForeignKeyViolation(err error) bool {
	return IsPgErrorWithCode(err, PgErrForeignKeyViolation)
}
