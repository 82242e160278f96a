package labelcodec

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
)

// InvalidFlagError is returned when a label vector contains a value
// other than 0 or 1.
func InvalidFlagError(idx, val int) error {
	msg := "Label vector has value <em>%d</em> at index <em>%d</em>, " +
		"only 0 and 1 are allowed"
	vars := []any{val, idx}
	return &gn.Error{
		Code: errcode.CodecInvalidFlagError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid flag %d at index %d", val, idx),
	}
}

// OverflowError is returned when a set flag would produce an identifier
// that does not fit into int64.
func OverflowError(length, pos int) error {
	msg := `Label vector of length <em>%d</em> has a flag at position <em>%d</em>

Only the last %d flags of a vector can be set.`
	vars := []any{length, pos, MaxPositions}
	return &gn.Error{
		Code: errcode.CodecOverflowError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"flag at position %d overflows label identifier", pos),
	}
}

// InvalidIdentifierError is returned when an identifier is not a power
// of two or does not fit into a vector of the given length.
func InvalidIdentifierError(id int64, length int) error {
	msg := "Label identifier <em>%d</em> cannot be encoded " +
		"in a vector of length %d"
	vars := []any{id, length}
	return &gn.Error{
		Code: errcode.CodecInvalidIdentifierError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot encode label identifier %d", id),
	}
}

// InvalidLengthError is returned when Encode gets a negative vector length.
func InvalidLengthError(length int) error {
	msg := "Label vector length <em>%d</em> cannot be negative"
	vars := []any{length}
	return &gn.Error{
		Code: errcode.CodecInvalidLengthError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid label vector length %d", length),
	}
}
