package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/internal/iodb"
	"github.com/gnames/pubdb/internal/iotesting"
	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SQLite tests run against a file in a temporary directory and need no
// server.
//
// PostgreSQL tests require a running server, credentials are taken from
// PUBDB_DATABASE_* environment variables (defaults postgres/postgres),
// database name is always "pubdb_test":
//
//   docker run -d --name pubdb-test -e POSTGRES_PASSWORD=postgres \
//     -e POSTGRES_DB=pubdb_test -p 5432:5432 postgres:15
//
// Skip them with:
//   go test -short

func TestNew(t *testing.T) {
	tests := []struct {
		msg, driver, want string
		wantErr          bool
	}{
		{"sqlite", "sqlite", "sqlite", false},
		{"default", "", "sqlite", false},
		{"postgres", "postgres", "postgres", false},
		{"unknown", "mysql", "", true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			op, err := iodb.New(v.driver)
			if v.wantErr {
				require.Error(t, err)
				gnErr, ok := err.(*gn.Error)
				require.True(t, ok, "Error should be of type *gn.Error")
				assert.Equal(t, errcode.DBUnknownDriverError, gnErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.want, op.Driver())
			assert.Nil(t, op.DB())
		})
	}
}

func TestSQLiteOperator_NotConnected(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "labels")
	assert.Error(t, err)

	_, err = op.HasTables(ctx)
	assert.Error(t, err)

	_, err = op.TableDefinitions(ctx, nil)
	assert.Error(t, err)

	assert.NoError(t, op.Close(), "Close without Connect is a no-op")
}

func TestSQLiteOperator_Connect(t *testing.T) {
	ctx := context.Background()
	cfg := iotesting.TempConfig(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "dir", "pubdb.db")

	op := iodb.NewSQLiteOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Connect creates missing directories")
	defer op.Close()

	assert.FileExists(t, cfg.Database.Path)

	var fk int
	err = op.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys are enforced")

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSQLiteOperator_EmptyPath(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	err := op.Connect(context.Background(), &config.DatabaseConfig{})
	require.Error(t, err)
	assert.Nil(t, op.DB())
}

func TestSQLiteOperator_Tables(t *testing.T) {
	ctx := context.Background()
	cfg := iotesting.TempConfig(t)

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	_, err := op.DB().ExecContext(ctx,
		"CREATE TABLE alpha (id INTEGER PRIMARY KEY, name TEXT)")
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx,
		"CREATE TABLE beta (id INTEGER, alpha_id INTEGER)")
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "gamma")
	require.NoError(t, err)
	assert.False(t, exists)

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	defs, err := op.TableDefinitions(ctx, nil)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t,
		"CREATE TABLE alpha (id INTEGER PRIMARY KEY, name TEXT)", defs[0])
	assert.Equal(t,
		"CREATE TABLE beta (id INTEGER, alpha_id INTEGER)", defs[1])

	// the same through a transaction
	tx, err := op.DB().BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	defs, err = op.TableDefinitions(ctx, tx)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
}

func TestRebind(t *testing.T) {
	query := "INSERT INTO labels (label_id, label) VALUES (?, ?)"

	assert.Equal(t, query, iodb.NewSQLiteOperator().Rebind(query))
	assert.Equal(t,
		"INSERT INTO labels (label_id, label) VALUES ($1, $2)",
		iodb.NewPgxOperator().Rebind(query),
	)
	assert.Equal(t, "SELECT 1", iodb.NewPgxOperator().Rebind("SELECT 1"))
}

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	if err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err, "Should be able to execute commands after Connect")
	assert.False(t, exists)

	_, err = op.TableDefinitions(ctx, nil)
	assert.NoError(t, err)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(context.Background(), cfg)
	require.Error(t, err, "Connect should fail with invalid host")

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)

	_, err = op.HasTables(context.Background())
	assert.Error(t, err, "operator stays unusable after failed Connect")
}
