// Package lifecycle defines the contracts of the pubdb lifecycle:
// schema creation, batch population and sampling.
package lifecycle

import (
	"context"

	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/db"
)

// SchemaManager defines the interface for database schema management.
// Schema creation is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates missing tables. Existing tables are left intact.
	Create(ctx context.Context, cfg *config.Config) error

	// Export returns CREATE TABLE statements of the stored tables.
	// The query runs through q, so it can see uncommitted tables of a
	// transaction. When q is nil the connection pool is used.
	Export(ctx context.Context, q db.Querier) ([]string, error)
}
