package iosample

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// NotConnectedError creates an error for when sampling
// is attempted without database connection.
func NotConnectedError() error {
	msg := "Sample operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// InvalidLimitError is returned for a negative sample size.
func InvalidLimitError(limit int) error {
	msg := "Sample size cannot be negative, got <em>%d</em>"
	vars := []any{limit}

	return &gn.Error{
		Code: errcode.SampleInvalidLimitError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid sample limit %d", limit),
	}
}

// SampleError is returned when sampling queries fail.
func SampleError(err error) error {
	msg := `Cannot sample publications

<em>Possible causes:</em>
  - The database was not built yet, run <em>pubdb build</em>
  - The database file is locked or corrupted`

	return &gn.Error{
		Code: errcode.SampleQueryError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to sample publications: %w", err),
	}
}

// SubscriptionsError is returned when subscriptions cannot be read.
func SubscriptionsError(err error) error {
	msg := `Cannot read subscriptions

<em>Possible causes:</em>
  - The database was not built yet, run <em>pubdb build</em>`

	return &gn.Error{
		Code: errcode.SampleSubscriptionsError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to read subscriptions: %w", err),
	}
}
