package iopopulate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TransactionError creates an error for failures to begin
// or commit the batch.
func TransactionError(stage string, err error) error {
	msg := "Cannot %s the batch transaction, no data was stored"
	vars := []any{stage}

	return &gn.Error{
		Code: errcode.DBTransactionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to %s transaction: %w", stage, err),
	}
}

// LabelsError creates an error for failures during
// import of labels.
func LabelsError(err error) error {
	msg := "Cannot import labels"

	return &gn.Error{
		Code: errcode.PopulateLabelsError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to import labels: %w", err),
	}
}

// SubscriptionsError creates an error for failures during
// import of subscriptions.
func SubscriptionsError(err error) error {
	msg := "Cannot import subscriptions"

	return &gn.Error{
		Code: errcode.PopulateSubscriptionsError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to import subscriptions: %w", err),
	}
}

// PublicationsError creates an error for failures during
// import of publications and their matches.
func PublicationsError(err error) error {
	msg := "Cannot import publications"

	return &gn.Error{
		Code: errcode.PopulatePublicationsError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to import publications: %w", err),
	}
}

// UnresolvedGroupError is returned when a subscription has no group,
// or its group is not among imported labels.
func UnresolvedGroupError(subscriptionID, groupID int64, found bool) error {
	if !found {
		msg := `Subscription <em>%d</em> does not belong to any label

<em>How to fix:</em>
  1. Add <em>group_id</em> to the subscription entry
  2. Run the build again, no data was stored`

		return &gn.Error{
			Code: errcode.PopulateUnresolvedGroupError,
			Msg:  msg,
			Vars: []any{subscriptionID},
			Err: fmt.Errorf("no group for subscription %d",
				subscriptionID),
		}
	}

	msg := `Subscription <em>%d</em> refers to unknown label <em>%d</em>

<em>How to fix:</em>
  1. Add the label to the labels file, or fix <em>group_id</em>
  2. Run the build again, no data was stored`

	return &gn.Error{
		Code: errcode.PopulateUnresolvedGroupError,
		Msg:  msg,
		Vars: []any{subscriptionID, groupID},
		Err: fmt.Errorf("subscription %d refers to unknown label %d",
			subscriptionID, groupID),
	}
}

// DanglingLabelError is returned when a label vector of a publication
// points to a label that was not imported.
func DanglingLabelError(publicationID, labelID int64) error {
	msg := `Publication <em>%d</em> is tagged with unknown label <em>%d</em>

<em>Possible causes:</em>
  - Label vectors of the dataset are longer than the labels list
  - Labels file belongs to a different dataset`

	vars := []any{publicationID, labelID}

	return &gn.Error{
		Code: errcode.PopulateDanglingLabelError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("publication %d refers to unknown label %d",
			publicationID, labelID),
	}
}

// DecodeError is returned when a label vector of a publication
// cannot be decoded.
func DecodeError(publicationID int64, err error) error {
	msg := "Cannot decode label vector of publication <em>%d</em>"
	vars := []any{publicationID}

	return &gn.Error{
		Code: errcode.PopulateDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("bad label vector of publication %d: %w",
			publicationID, err),
	}
}
