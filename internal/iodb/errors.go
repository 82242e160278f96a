package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// ConnectionError is returned when a PostgreSQL connection fails.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database <em>%s</em> exists and user <em>%s</em>
     has access to it
  3. Review settings in <em>~/.config/pubdb/config.yaml</em>`

	vars := []any{host, port, database, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// SQLiteConnectionError is returned when a SQLite file cannot be opened.
func SQLiteConnectionError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Check that the file is not corrupted or locked`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open %s: %w", path, err),
	}
}

// UnknownDriverError is returned for unsupported storage backends.
func UnknownDriverError(driver string) error {
	msg := "Storage driver <em>%s</em> is not supported, " +
		"use 'sqlite' or 'postgres'"
	vars := []any{driver}

	return &gn.Error{
		Code: errcode.DBUnknownDriverError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown driver %q", driver),
	}
}

// NotConnectedError is returned when an operation is attempted
// before a successful Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	msg := "Cannot check tables of the database"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// TableExistsCheckError is returned when checking for one table fails.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// TableDefinitionsError is returned when table definitions cannot be read.
func TableDefinitionsError(err error) error {
	msg := "Cannot read table definitions from the database"

	return &gn.Error{
		Code: errcode.SchemaExportError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to read table definitions: %w", err),
	}
}
