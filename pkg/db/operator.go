package db

import (
	"context"
	"database/sql"

	"github.com/gnames/pubdb/pkg/config"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes *sql.DB for
// high-level lifecycle components (SchemaManager, Populator, Sampler) to
// execute their SQL internally.
//
// Both SQLite and PostgreSQL backends are reached through database/sql,
// so components only differ in placeholder syntax, which Rebind hides.
type Operator interface {
	// Connect opens the store described by the configuration.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases all database connections.
	Close() error

	// DB returns the connection pool. It is nil until Connect succeeds.
	DB() *sql.DB

	// Driver returns the name of the backend ("sqlite" or "postgres").
	Driver() string

	// Rebind converts a query written with '?' placeholders to the
	// placeholder syntax of the backend.
	Rebind(query string) string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any user tables.
	HasTables(ctx context.Context) (bool, error)

	// TableDefinitions returns CREATE TABLE statements of all user tables
	// in the natural enumeration order of the store. Internal relations
	// without user-visible definitions are skipped.
	TableDefinitions(ctx context.Context, q Querier) ([]string, error)
}

// Querier is implemented by both *sql.DB and *sql.Tx, so the same code
// can run inside or outside of a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
