package iosources

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// LabelsError creates an error for when the labels file
// cannot be loaded.
func LabelsError(path string, err error) error {
	msg := `Cannot load labels

<em>Labels file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Duplicate identifiers

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Set the path with <em>--labels</em> flag`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesLabelsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load labels from %s: %w", path, err),
	}
}

// SubscriptionsError creates an error for when the subscriptions
// file cannot be loaded.
func SubscriptionsError(path string, err error) error {
	msg := `Cannot load subscriptions

<em>Subscriptions file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Duplicate identifiers

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Set the path with <em>--subscriptions</em> flag`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesSubscriptionsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to load subscriptions from %s: %w",
			path, err),
	}
}

// DatasetError creates an error for when the dataset file
// cannot be read.
func DatasetError(path string, err error) error {
	msg := `Cannot read dataset <em>%s</em>

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Set the path with <em>--dataset</em> flag`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SourcesDatasetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read dataset %s: %w", path, err),
	}
}

// RecordError creates an error for a dataset line that
// cannot be decoded.
func RecordError(path string, line int, err error) error {
	msg := `Cannot decode record at line <em>%d</em> of <em>%s</em>

Every line must be a JSON object with 'id', 'text' and 'label' fields,
for example:
  {"id": 1, "text": "...", "label": [0, 1, 0]}`

	vars := []any{line, path}

	return &gn.Error{
		Code: errcode.SourcesRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad record %s:%d: %w", path, line, err),
	}
}
