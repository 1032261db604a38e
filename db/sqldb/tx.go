package sqldb

import "context"

// Tx Transaction
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)

	// InsertStmt - Single INSERT statement, placeholders only
	// to guarantee Result.LastInsertId() works for auto-increment `id`
	InsertStmt(ctx context.Context, query string, args ...any) (Result, error)
}
