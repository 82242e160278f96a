package iooptimize

import (
	"context"
	"fmt"
	"log/slog"
)

// index is a secondary index not covered by primary keys or
// the unique pair of publication_matches.
type index struct {
	name, table, column string
}

var indexes = []index{
	{"idx_subscriptions_label_id", "subscriptions", "label_id"},
	{"idx_publication_matches_label_id", "publication_matches", "label_id"},
}

// IndexNames returns names of secondary indexes created by Optimize.
func IndexNames() []string {
	res := make([]string, len(indexes))
	for i, v := range indexes {
		res[i] = v.name
	}
	return res
}

func (o *optimizer) createIndexes(ctx context.Context) error {
	conn := o.operator.DB()
	for _, v := range indexes {
		q := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
			v.name, v.table, v.column)
		if _, err := conn.ExecContext(ctx, q); err != nil {
			return IndexError(v.name, err)
		}
		slog.Debug("Index is ready", "index", v.name)
	}
	return nil
}
