package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgErrUniqueViolation = "23505"

// IsUniqueViolation распознает нарушение уникального индекса. Репозитории
// используют его там, где дубликат означает повторную доставку события,
// а не ошибку.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}
	return false
}
