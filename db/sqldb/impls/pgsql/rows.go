package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitetools/ops-core/db/sqldb"
)

type Rows struct {
	rows pgx.Rows
}

var _ sqldb.Rows = (*Rows)(nil)

func (r *Rows) Next() bool {
	return r.rows.Next()
}

func (r *Rows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *Rows) Close() error {
	r.rows.Close() // pgx Close has no error to surface
	return nil
}

func (r *Rows) Err() error {
	return r.rows.Err()
}

type Row struct {
	row pgx.Row
}

var _ sqldb.Row = (*Row)(nil)

func (r *Row) Scan(dest ...any) error {
	return r.row.Scan(dest...)
}

type Result struct {
	tag          pgconn.CommandTag
	lastInsertID int64
}

var _ sqldb.Result = (*Result)(nil)

func (r *Result) RowsAffected() (int64, error) {
	return r.tag.RowsAffected(), nil
}

func (r *Result) LastInsertId() (int64, error) {
	return r.lastInsertID, nil
}
