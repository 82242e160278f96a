package iopopulate

import (
	"context"
	"fmt"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/pubdb/pkg/db"
)

// batchRows limits the number of rows in one INSERT statement.
// SQLite allows up to 32766 parameters per statement and PostgreSQL
// 65535, with 2-3 columns per row 10000 rows stay under both limits.
const batchRows = 10_000

// inserter writes rows into a table with multi-row INSERT statements.
type inserter struct {
	q       db.Querier
	rebind  func(string) string
	table   string
	columns []string
}

// insert writes rows in batches. The bar is advanced by the number of
// written rows if it is not nil.
func (ins *inserter) insert(
	ctx context.Context,
	rows [][]any,
	bar *pb.ProgressBar,
) error {
	for i := 0; i < len(rows); i += batchRows {
		end := min(i+batchRows, len(rows))
		batch := rows[i:end]

		query, args := ins.query(batch)
		if _, err := ins.q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", ins.table, err)
		}

		if bar != nil {
			bar.Add(len(batch))
		}
	}
	return nil
}

// query builds INSERT INTO t (a, b) VALUES (?, ?), (?, ?)... for
// the batch.
func (ins *inserter) query(batch [][]any) (string, []any) {
	placeholder := "(" +
		strings.TrimSuffix(strings.Repeat("?, ", len(ins.columns)), ", ") +
		")"

	values := make([]string, len(batch))
	args := make([]any, 0, len(batch)*len(ins.columns))
	for i, row := range batch {
		values[i] = placeholder
		args = append(args, row...)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		ins.table,
		strings.Join(ins.columns, ", "),
		strings.Join(values, ", "),
	)
	return ins.rebind(query), args
}
