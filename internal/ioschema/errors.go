package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(table string, err error) error {
	msg := `Cannot create table <em>%s</em>

<em>Possible causes:</em>
  - Insufficient database permissions
  - A table with the same name but different columns exists

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Remove the database file or drop conflicting tables`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create table %s: %w", table, err),
	}
}

// ExportSchemaError creates an error for failures
// to read table definitions.
func ExportSchemaError(err error) error {
	msg := "Cannot export database schema"

	return &gn.Error{
		Code: errcode.SchemaExportError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to export schema: %w", err),
	}
}
