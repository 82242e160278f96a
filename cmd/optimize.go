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
	"github.com/gnames/pubdb/internal/iooptimize"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Add indexes and refresh statistics",
		Long: `Prepare a built database for reading.

This command:
  1. Creates indexes on label_id of subscriptions and
     publication_matches
  2. Runs VACUUM and ANALYZE (VACUUM ANALYZE on PostgreSQL)

The command can be repeated, existing indexes are kept.

Examples:
  pubdb build && pubdb optimize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runOptimize(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return optimizeCmd
}

func runOptimize(ctx context.Context) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = checkTables(ctx, op); err != nil {
		return err
	}

	if err = iooptimize.NewOptimizer(op).Optimize(ctx); err != nil {
		return err
	}

	gn.Info("Database optimization complete!")
	return nil
}
