package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// NotConnectedError creates an error for when optimize
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Optimize operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// IndexError is returned when a secondary index cannot be created.
func IndexError(index string, err error) error {
	msg := `Cannot create index <em>%s</em>

<em>How to fix:</em>
  1. Make sure the database was built: <em>pubdb build</em>
  2. Run <em>pubdb optimize</em> again`

	return &gn.Error{
		Code: errcode.OptimizeIndexError,
		Msg:  msg,
		Vars: []any{index},
		Err:  fmt.Errorf("failed to create index %s: %w", index, err),
	}
}

// VacuumError is returned when storage cannot be compacted or
// statistics cannot be refreshed.
func VacuumError(stmt string, err error) error {
	msg := "Cannot run <em>%s</em> on the database"

	return &gn.Error{
		Code: errcode.OptimizeVacuumError,
		Msg:  msg,
		Vars: []any{stmt},
		Err:  fmt.Errorf("failed to run %s: %w", stmt, err),
	}
}
