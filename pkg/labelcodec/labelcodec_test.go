package labelcodec_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
	"github.com/gnames/pubdb/pkg/labelcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		msg   string
		flags []int
		res   []int64
	}{
		{"nil", nil, []int64{}},
		{"empty", []int{}, []int64{}},
		{"zeros", []int{0, 0, 0, 0}, []int64{}},
		{"1,0,1", []int{1, 0, 1}, []int64{1, 4}},
		{"0,1", []int{0, 1}, []int64{1}},
		{"1,0", []int{1, 0}, []int64{2}},
		{"single", []int{1}, []int64{1}},
		{"all", []int{1, 1, 1, 1}, []int64{1, 2, 4, 8}},
		{
			"dataset width",
			[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
			[]int64{2},
		},
	}

	for _, v := range tests {
		res, err := labelcodec.Decode(v.flags)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestDecodeIsPure(t *testing.T) {
	flags := []int{1, 1, 0, 1}
	orig := append([]int(nil), flags...)
	res1, err := labelcodec.Decode(flags)
	require.NoError(t, err)
	res2, err := labelcodec.Decode(flags)
	require.NoError(t, err)
	assert.Equal(t, res1, res2)
	assert.Equal(t, orig, flags, "input must not be modified")
}

func TestDecodeErrors(t *testing.T) {
	t.Run("invalid flag", func(t *testing.T) {
		_, err := labelcodec.Decode([]int{0, 2, 1})
		require.Error(t, err)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.CodecInvalidFlagError, gnErr.Code)
	})

	t.Run("overflow", func(t *testing.T) {
		flags := make([]int, 64)
		flags[0] = 1
		_, err := labelcodec.Decode(flags)
		require.Error(t, err)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.CodecOverflowError, gnErr.Code)
	})

	t.Run("long vector with zero prefix", func(t *testing.T) {
		flags := make([]int, 100)
		flags[99] = 1
		flags[100-labelcodec.MaxPositions] = 1
		res, err := labelcodec.Decode(flags)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 1 << 62}, res)
	})
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		n := r.IntN(labelcodec.MaxPositions + 1)
		flags := make([]int, n)
		for i := range flags {
			flags[i] = r.IntN(2)
		}

		ids, err := labelcodec.Decode(flags)
		require.NoError(t, err)

		res, err := labelcodec.Encode(ids, n)
		require.NoError(t, err)
		assert.Equal(t, flags, res)

		pos, err := labelcodec.Positions(ids)
		require.NoError(t, err)
		var asserted []int
		for i := range flags {
			if flags[n-1-i] == 1 {
				asserted = append(asserted, i)
			}
		}
		if asserted == nil {
			asserted = []int{}
		}
		assert.Equal(t, asserted, pos)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		msg    string
		ids    []int64
		length int
	}{
		{"not power of two", []int64{3}, 4},
		{"zero", []int64{0}, 4},
		{"negative", []int64{-2}, 4},
		{"too long", []int64{16}, 4},
		{"negative length", []int64{1}, -1},
		{"negative length, no ids", nil, -3},
	}

	for _, v := range tests {
		assert.NotPanics(t, func() {
			_, err := labelcodec.Encode(v.ids, v.length)
			assert.Error(t, err, v.msg)
		}, v.msg)
	}

	_, err := labelcodec.Encode(nil, -1)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CodecInvalidLengthError, gnErr.Code)
}

func TestMaskSplit(t *testing.T) {
	mask, err := labelcodec.Mask([]int{1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1011), mask)
	assert.Equal(t, []int64{1, 2, 8}, labelcodec.Split(mask))

	mask, err = labelcodec.Mask(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), mask)
	assert.Equal(t, []int64{}, labelcodec.Split(mask))

	_, err = labelcodec.Mask([]int{5})
	assert.Error(t, err)
}
