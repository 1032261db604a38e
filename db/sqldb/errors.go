package sqldb

import (
	"database/sql"
	"errors"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolationCode    = "23505"
	mysqlUniqueViolationCode = 1062
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// across the supported drivers. Callers map it to a user-facing
// "already exists" message.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlUniqueViolationCode
	}
	return false
}

// IsNoRows reports whether err means "no row matched", across drivers.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
