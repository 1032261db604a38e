package sqldb

import (
	"database/sql"
	"fmt"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(pgDup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pgDup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"})) // fk violation

	myDup := &gomysql.MySQLError{Number: 1062}
	assert.True(t, IsUniqueViolation(myDup))
	assert.False(t, IsUniqueViolation(&gomysql.MySQLError{Number: 1451}))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(fmt.Errorf("plain")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("query: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(fmt.Errorf("plain")))
}
