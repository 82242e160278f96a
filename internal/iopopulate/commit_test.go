package iopopulate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gnames/gn"
	"github.com/gnames/pubdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit(t *testing.T) {
	stmts := []string{"CREATE TABLE labels (label_id INTEGER)"}

	tests := []struct {
		msg       string
		commitErr error
		saved     bool
	}{
		{"saves schema after commit", nil, true},
		{"no schema when commit fails", errors.New("disk I/O error"), false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer conn.Close()

			mock.ExpectBegin()
			if v.commitErr == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectCommit().WillReturnError(v.commitErr)
			}

			tx, err := conn.Begin()
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "schema.sql")
			err = commit(tx, path, stmts)
			require.NoError(t, mock.ExpectationsWereMet())

			_, statErr := os.Stat(path)
			if v.saved {
				require.NoError(t, err)
				assert.NoError(t, statErr)
				return
			}

			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, errcode.DBTransactionError, gnErr.Code)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}
