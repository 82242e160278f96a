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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/pubdb/internal/iopopulate"
	"github.com/gnames/pubdb/pkg/config"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var (
		labelsFile        string
		subscriptionsFile string
		datasetFile       string
		publicationsNum   int
		schemaFile        string
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Import labels, subscriptions and publications",
		Long: `Build the database from the taxonomy files and the dataset.

This command:
  1. Reads labels (YAML), subscriptions (YAML) and the dataset
     (JSON Lines) in parallel
  2. Creates the schema if it is missing
  3. Imports everything in one transaction:
     - Labels
     - Subscriptions, linked to their label by group_id
     - Publications and one match per set flag of their label vector
  4. Saves table definitions to the schema file

Any integrity defect (unknown group, label outside of the labels list,
malformed label vector) aborts the batch and nothing is stored.

Examples:
  # Import with files from config.yaml
  pubdb build

  # Import the first 500 publications of another dataset
  pubdb build --dataset data/test.jsonl -n 500

  # Write table definitions elsewhere
  pubdb build --schema-out /tmp/schema.sql`,
		Aliases: []string{"populate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var buildOpts []config.Option
			flags := cmd.Flags()
			if flags.Changed("labels") {
				buildOpts = append(buildOpts,
					config.OptSourcesLabelsFile(labelsFile))
			}
			if flags.Changed("subscriptions") {
				buildOpts = append(buildOpts,
					config.OptSourcesSubscriptionsFile(subscriptionsFile))
			}
			if flags.Changed("dataset") {
				buildOpts = append(buildOpts,
					config.OptSourcesDatasetFile(datasetFile))
			}
			if flags.Changed("publications-num") {
				buildOpts = append(buildOpts,
					config.OptPopulatePublicationsNum(publicationsNum))
			}
			if flags.Changed("schema-out") {
				buildOpts = append(buildOpts,
					config.OptExportSchemaFile(schemaFile))
			}
			cfg.Update(buildOpts)

			err := runBuild(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().StringVar(
		&labelsFile, "labels", "",
		"YAML file with original labels",
	)
	buildCmd.Flags().StringVar(
		&subscriptionsFile, "subscriptions", "",
		"YAML file with expanded subscriptions",
	)
	buildCmd.Flags().StringVar(
		&datasetFile, "dataset", "",
		"JSON Lines file with publications",
	)
	buildCmd.Flags().IntVarP(
		&publicationsNum, "publications-num", "n", 0,
		"maximum number of publications to import",
	)
	buildCmd.Flags().StringVar(
		&schemaFile, "schema-out", "",
		"file for exported table definitions",
	)

	return buildCmd
}

func runBuild(ctx context.Context) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Starting import of <em>%s</em>...", cfg.Sources.DatasetFile)
	stats, err := iopopulate.New(op, nil).Populate(ctx, cfg)
	if err != nil {
		return err
	}

	gn.Info(`Database is built: <em>%s</em> labels, <em>%s</em> subscriptions,
<em>%s</em> publications, <em>%s</em> matches.

Next steps:
  - Run '<em>pubdb sample</em>' to export random publications`,
		humanize.Comma(int64(stats.Labels)),
		humanize.Comma(int64(stats.Subscriptions)),
		humanize.Comma(int64(stats.Publications)),
		humanize.Comma(int64(stats.Matches)),
	)
	return nil
}
