/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/internal/iodb"
	"github.com/gnames/pubdb/internal/ioschema"
	"github.com/gnames/pubdb/pkg/db"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create labels, subscriptions, publications and
publication_matches tables.

This command:
  1. Connects to SQLite or PostgreSQL using configuration settings
  2. Creates missing tables (GORM AutoMigrate for PostgreSQL,
     generated DDL for SQLite)

Existing tables and their data are left untouched, so the command
can be repeated safely. 'pubdb build' creates the schema as well.

Examples:
  pubdb create
  PUBDB_DATABASE_DRIVER=postgres pubdb create`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return createCmd
}

func runCreate(ctx context.Context) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	sm := ioschema.NewManager(op)
	gn.Info("Creating schema...")
	if err = sm.Create(ctx, cfg); err != nil {
		return err
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("Next steps:\n  - Run '<em>pubdb build</em>' to import data")
	return nil
}

// connect opens the database selected in configuration.
func connect(ctx context.Context) (db.Operator, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	op, err := iodb.New(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	if op.Driver() == "postgres" {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	} else {
		gn.Info("Connected to database: <em>%s</em>", cfg.Database.Path)
	}
	return op, nil
}
