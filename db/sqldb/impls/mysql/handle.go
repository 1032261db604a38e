package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sitetools/ops-core/db/sqldb"
)

type Handle struct {
	db *sql.DB
}

var _ sqldb.Handle = (*Handle)(nil)

func (h *Handle) Exec(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	res, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return res, nil // sql.Result already satisfies sqldb.Result
}

func (h *Handle) QueryRows(ctx context.Context, query string, args ...any) (sqldb.Rows, error) {
	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil // *sql.Rows already satisfies sqldb.Rows
}

func (h *Handle) QueryRow(ctx context.Context, query string, args ...any) sqldb.Row {
	return h.db.QueryRowContext(ctx, query, args...)
}

func (h *Handle) InsertStmt(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT") {
		return nil, fmt.Errorf("InsertStmt must start with INSERT")
	}
	return h.db.ExecContext(ctx, query, args...)
}
