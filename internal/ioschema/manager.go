// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package.
// SQLite tables are created from DDL generated out of the schema
// models, PostgreSQL tables are created by GORM AutoMigrate.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/db"
	"github.com/gnames/pubdb/pkg/lifecycle"
	"github.com/gnames/pubdb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates all tables that do not exist yet.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	if m.operator.DB() == nil {
		return NotConnectedError()
	}

	if m.operator.Driver() == "postgres" {
		return m.migrate(ctx)
	}

	for _, model := range schema.AllModels() {
		_, err := m.operator.DB().ExecContext(ctx, model.TableDDL())
		if err != nil {
			return CreateSchemaError(model.TableName(), err)
		}
		slog.Debug("Table is ready", "table", model.TableName())
	}
	return nil
}

func (m *manager) migrate(ctx context.Context) error {
	// Connect with GORM, reusing the pool of the operator
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: m.operator.DB()}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	// Run GORM AutoMigrate to create schema
	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError("all", err)
	}
	return nil
}

// Export returns definitions of stored tables.
func (m *manager) Export(
	ctx context.Context,
	q db.Querier,
) ([]string, error) {
	if m.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	res, err := m.operator.TableDefinitions(ctx, q)
	if err != nil {
		return nil, ExportSchemaError(err)
	}
	return res, nil
}
