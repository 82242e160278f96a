package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/db"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// Pragmas are set through the DSN, so that every connection of the pool
// gets them, not only the first one.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"busy_timeout(10000)",
	"synchronous(NORMAL)",
}

// sqliteOperator implements db.Operator interface for a SQLite file.
type sqliteOperator struct {
	path string
	db   *sql.DB
}

// NewSQLiteOperator creates a new SQLite operator (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite file at cfg.Path, creating it together with
// its parent directories if needed.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	path := cfg.Path
	if path == "" {
		return SQLiteConnectionError(path,
			fmt.Errorf("database path is empty"))
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return SQLiteConnectionError(path, err)
		}
	}

	dsn := sqliteDSN(path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SQLiteConnectionError(path, err)
	}

	// every connection to ":memory:" is a separate database
	if path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteConnectionError(path, err)
	}

	s.path = path
	s.db = sqlDB
	return nil
}

func sqliteDSN(path string) string {
	params := make([]string, len(sqlitePragmas))
	for i, v := range sqlitePragmas {
		params[i] = "_pragma=" + v
	}
	return path + "?" + strings.Join(params, "&")
}

// Close releases the database file.
func (s *sqliteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DB returns the underlying connection pool.
func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

// Driver returns "sqlite".
func (s *sqliteOperator) Driver() string {
	return "sqlite"
}

// Rebind returns the query unchanged, SQLite understands '?'.
func (s *sqliteOperator) Rebind(query string) string {
	return query
}

// TableExists checks if a table exists in the database.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any user tables.
func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		)
	`

	var hasTables bool
	err := s.db.QueryRowContext(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// TableDefinitions returns statements stored in sqlite_master in their
// natural order. Tables without stored SQL and SQLite's own tables are
// skipped.
func (s *sqliteOperator) TableDefinitions(
	ctx context.Context,
	q db.Querier,
) ([]string, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}
	if q == nil {
		q = s.db
	}

	query := `SELECT name, sql FROM sqlite_master WHERE type = 'table'`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, TableDefinitionsError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		var stmt sql.NullString
		if err = rows.Scan(&name, &stmt); err != nil {
			return nil, TableDefinitionsError(err)
		}
		if !stmt.Valid || strings.HasPrefix(name, "sqlite_") {
			continue
		}
		res = append(res, stmt.String)
	}
	if err = rows.Err(); err != nil {
		return nil, TableDefinitionsError(err)
	}

	return res, nil
}
