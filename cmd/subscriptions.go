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
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/internal/iosample"
	"github.com/gnames/pubdb/pkg/db"
	"github.com/gnames/pubdb/pkg/errcode"
	"github.com/gnames/pubdb/pkg/schema"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// getSubscriptionsCmd returns the subscriptions command.
func getSubscriptionsCmd() *cobra.Command {
	subsCmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "List the subscription taxonomy",
		Long: `Print identifiers and texts of all stored subscriptions.

Examples:
  pubdb subscriptions
  pubdb subscriptions | grep -i algebra`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSubscriptions(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return subsCmd
}

func runSubscriptions(ctx context.Context, w io.Writer) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = checkTables(ctx, op); err != nil {
		return err
	}

	subs, err := iosample.New(op).Subscriptions(ctx)
	if err != nil {
		return err
	}

	table, err := subscriptionsTable(subs)
	if err != nil {
		return err
	}
	fmt.Fprint(w, table)
	gn.Info("Found <em>%d</em> subscriptions", len(subs))
	return nil
}

// subscriptionsTable renders subscriptions as a text table.
func subscriptionsTable(subs []schema.SubscriptionMatch) (string, error) {
	data := make(pterm.TableData, 0, len(subs)+1)
	data = append(data, []string{"ID", "Subscription"})
	for _, v := range subs {
		data = append(data, []string{
			strconv.FormatInt(v.SubscriptionID, 10),
			v.Subscription,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// checkTables refuses to read from a database without schema.
func checkTables(ctx context.Context, op db.Operator) error {
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		return &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'pubdb build'</em> first to import data.`,
			Err: errors.New("cannot read from empty database"),
		}
	}
	return nil
}
