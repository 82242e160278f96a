// Package iodb implements database operations for SQLite and PostgreSQL.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"github.com/gnames/pubdb/pkg/db"
)

// New creates a database operator (without connecting) for the given
// driver name.
func New(driver string) (db.Operator, error) {
	switch driver {
	case "sqlite", "":
		return NewSQLiteOperator(), nil
	case "postgres":
		return NewPgxOperator(), nil
	default:
		return nil, UnknownDriverError(driver)
	}
}
