package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors verifies structure of file system errors.
func TestErrors(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name  string
		err   error
		code  gn.ErrorCode
		path  string
		inErr string
	}{
		{
			name:  "CreateDirError",
			err:   CreateDirError("/test/dir", originalErr),
			code:  errcode.CreateDirError,
			path:  "/test/dir",
			inErr: "cannot create",
		},
		{
			name:  "CopyFileError",
			err:   CopyFileError("/test/config.yaml", originalErr),
			code:  errcode.CopyFileError,
			path:  "/test/config.yaml",
			inErr: "cannot copy",
		},
		{
			name:  "ReadFileError",
			err:   ReadFileError("/test/data.json", originalErr),
			code:  errcode.ReadFileError,
			path:  "/test/data.json",
			inErr: "cannot read /test/data.json",
		},
		{
			name:  "WriteFileError",
			err:   WriteFileError("/test/schema.sql", originalErr),
			code:  errcode.WriteFileError,
			path:  "/test/schema.sql",
			inErr: "cannot write /test/schema.sql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok,
				"Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s",
				"Message should contain format placeholder")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			// caller context comes from runtime.Caller
			assert.Contains(t, gnErr.Err.Error(), "from")
			assert.Contains(t, gnErr.Err.Error(), tt.inErr)
			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
		})
	}
}
