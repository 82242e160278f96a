// Package labelcodec converts dataset label vectors into label identifiers.
//
// A label vector is an ordered slice of 0/1 flags. The vector is read from
// its end: the flag at index i counted from the end of the vector stands for
// the label identifier 2^i. So [1,0,1] gives {1, 4} and [0,1] gives {1}.
//
// Identifiers are stored as int64, therefore only the last MaxPositions
// flags of a vector can be set. Zero flags beyond that limit are accepted.
package labelcodec

import (
	"math/bits"
	"slices"
)

// MaxPositions is the number of trailing flags that can produce an
// identifier fitting into a positive int64.
const MaxPositions = 63

// Decode returns identifiers of all set flags of the vector in ascending
// order. An empty or all-zero vector returns an empty slice.
func Decode(flags []int) ([]int64, error) {
	res := make([]int64, 0, len(flags))
	last := len(flags) - 1
	for i := range flags {
		flag := flags[last-i]
		switch flag {
		case 0:
			continue
		case 1:
		default:
			return nil, InvalidFlagError(last-i, flag)
		}
		if i >= MaxPositions {
			return nil, OverflowError(len(flags), i)
		}
		res = append(res, int64(1)<<i)
	}
	return res, nil
}

// Encode is the inverse of Decode. It returns a vector of the given length
// with flags set for every identifier.
func Encode(ids []int64, length int) ([]int, error) {
	if length < 0 {
		return nil, InvalidLengthError(length)
	}
	res := make([]int, length)
	for _, id := range ids {
		pos, ok := position(id)
		if !ok || pos >= length {
			return nil, InvalidIdentifierError(id, length)
		}
		res[length-1-pos] = 1
	}
	return res, nil
}

// Mask collapses a label vector into a single bitmask, where every
// identifier returned by Decode is one bit of the mask.
func Mask(flags []int) (uint64, error) {
	ids, err := Decode(flags)
	if err != nil {
		return 0, err
	}
	var res uint64
	for _, id := range ids {
		res |= uint64(id)
	}
	return res, nil
}

// Split returns identifiers of all bits set in the mask, in ascending
// order.
func Split(mask uint64) []int64 {
	res := make([]int64, 0, bits.OnesCount64(mask))
	for mask != 0 {
		pos := bits.TrailingZeros64(mask)
		if pos < MaxPositions {
			res = append(res, int64(1)<<pos)
		}
		mask &^= 1 << pos
	}
	return res
}

// Positions returns vector positions (counted from the end of a vector)
// that correspond to the identifiers.
func Positions(ids []int64) ([]int, error) {
	res := make([]int, 0, len(ids))
	for _, id := range ids {
		pos, ok := position(id)
		if !ok {
			return nil, InvalidIdentifierError(id, MaxPositions)
		}
		res = append(res, pos)
	}
	slices.Sort(res)
	return res, nil
}

func position(id int64) (int, bool) {
	if id <= 0 || id&(id-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(id)), true
}
