// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gnames/pubdb/pkg/config"
)

const (
	// TestDatabaseName is the PostgreSQL database name used for all
	// integration tests. This ensures tests never accidentally run against
	// production databases.
	TestDatabaseName = "pubdb_test"
)

// TempConfig returns a configuration with HomeDir and the SQLite database
// located in a temporary directory that is removed after the test.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.TempConfig(t)
//	    op, _ := iodb.New(cfg.Database.Driver)
//	    // ... use cfg for database operations
//	}
func TempConfig(t *testing.T) *config.Config {
	t.Helper()

	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(filepath.Join(home, "pubdb.db")),
		config.OptExportSchemaFile(filepath.Join(home, "schema.sql")),
		config.OptExportSampleFile(filepath.Join(home, "sample.json")),
		config.OptLogDestination("stderr"),
	})
	return cfg
}

// GetTestDatabaseConfig returns PostgreSQL settings for integration tests.
// Credentials are taken from PUBDB_DATABASE_* environment variables when
// they are set, the database name is always TestDatabaseName.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := config.New()
	opts := []config.Option{
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseDatabase(TestDatabaseName),
	}
	if v := os.Getenv("PUBDB_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("PUBDB_DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("PUBDB_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("PUBDB_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	cfg.Update(opts)
	return &cfg.Database
}
