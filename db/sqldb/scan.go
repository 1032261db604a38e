package sqldb

import (
	"context"
	"fmt"
	"log"

	"github.com/sitetools/ops-core/orm"
)

func QueryItem[
	M any, // Model struct
	MP Scannable[M], // *Model Implementing Scannable[M]
](
	ctx context.Context,
	handle Handle,
	rawStmt string,
	args ...any,
) (*M, error) { // Returns the Pointer to the Newly Created Item
	row := handle.QueryRow(ctx, rawStmt, args...)
	return RowToItem[M, MP](row)
}

func RowToItem[
	M any, // Model struct
	MP Scannable[M], // *Model Implementing Scannable[M]
](row Row) (*M, error) {
	var item M     // struct with zero values for the fields
	p := MP(&item) // p is *M, which satisfies targetFieldsProvider interface
	err := row.Scan(p.TargetFields()...)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func QueryItems[
	M any, // Model struct
	MP Scannable[M], // *Model Implementing Scannable[M]
](
	ctx context.Context,
	handle Handle,
	rawStmt string,
	args ...any,
) ([]*M, error) { // Returns a Slice of Model-Pointers
	rows, err := handle.QueryRows(ctx, rawStmt, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("rows.Close() failed: %v", err)
		}
	}()
	return RowsToItems[M, MP](rows)
}

func RowsToItems[
	M any, // Model struct
	MP Scannable[M], // *Model Implementing Scannable[M]
](rows Rows) ([]*M, error) {
	var itemPtrs []*M
	for rows.Next() {
		var item M
		p := MP(&item)
		// Scan the Fields of Each Row to the Fields of the new struct of the Model
		if err := rows.Scan(p.TargetFields()...); err != nil {
			return nil, fmt.Errorf("scan failed: %v", err)
		}
		itemPtrs = append(itemPtrs, &item) // Collect the pointers
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during iterating rows: %v", err)
	}
	return itemPtrs, nil
}

// QueryCollection queries items using rawStmt and scans rows into an
// ordered collection preserving the result order.
func QueryCollection[
	M any, // Model struct
	MP ScannableIdentifiable[M, ID], // *Model implementing ScannableIdentifiable[M, ID]
	ID comparable,
](
	ctx context.Context,
	handle Handle,
	rawStmt string,
	args ...any,
) (*orm.Collection[MP, ID], error) {
	rows, err := handle.QueryRows(ctx, rawStmt, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("rows.Close() failed: %v", err)
		}
	}()
	return RowsToCollection[M, MP, ID](rows)
}

func RowsToCollection[
	M any,
	MP ScannableIdentifiable[M, ID],
	ID comparable,
](rows Rows) (*orm.Collection[MP, ID], error) {
	coll := orm.NewEmptyOrderedCollection[MP, ID]()
	for rows.Next() {
		var item M
		p := MP(&item)
		if err := rows.Scan(p.TargetFields()...); err != nil {
			return nil, fmt.Errorf("scan failed: %v", err)
		}
		coll.Add(p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during iterating rows: %v", err)
	}
	return coll, nil
}

// LoadHasMany - Load Children of the Parents from SQL DB and Link
// Parent-HasMany-Children Relations. Returns the Children.
func LoadHasMany[
	PP orm.Identifiable[PID],
	PID comparable,
	C any, // Model struct
	CP ScannableIdentifiable[C, CID],
	CID comparable,
](
	ctx context.Context,
	handle Handle,
	prefix byte, // placeholder prefix of the dialect
	parents *orm.Collection[PP, PID],
	sqlSelectBase string, // e.g. "SELECT ... FROM attendees"
	foreignKeyColumn string, // on the child
	foreignKey func(CP) PID, // on the child
	relationFieldPtr func(PP) **orm.Collection[CP, CID], // on the parent
) (*orm.Collection[CP, CID], error) {
	sqlStmt := fmt.Sprintf("%s WHERE %s IN (%s)", sqlSelectBase, foreignKeyColumn,
		Placeholders(prefix, parents.Len()))
	children, err := QueryCollection[C, CP, CID](ctx, handle, sqlStmt, parents.IDsAsAny()...)
	if err != nil {
		return nil, err
	}
	orm.LinkHasMany[PP, PID, CP, CID](parents, children, foreignKey, relationFieldPtr)
	return children, nil
}
