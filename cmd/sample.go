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
	"github.com/gnames/pubdb/internal/iofs"
	"github.com/gnames/pubdb/internal/iosample"
	"github.com/gnames/pubdb/pkg/config"
	"github.com/spf13/cobra"
)

// getSampleCmd returns the sample command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSampleCmd() *cobra.Command {
	var (
		limit  int
		output string
	)

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Export random publications with their labels",
		Long: `Draw a uniformly random sample of distinct publications and save
them together with matched labels as JSON.

Each sampled publication has this shape:
  {
    "publication_id": 2,
    "publication": "Algorithms for algebra",
    "subscription_matches": [
      {"subscription_id": 1, "subscription": "Mathematics"}
    ]
  }

If the limit is larger than the number of stored publications, all
of them are returned. Limit 0 gives an empty list.

Examples:
  pubdb sample
  pubdb sample -n 100 -o sample.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sampleOpts []config.Option
			if cmd.Flags().Changed("limit") {
				sampleOpts = append(sampleOpts, config.OptSampleLimit(limit))
			}
			if cmd.Flags().Changed("output") {
				sampleOpts = append(sampleOpts, config.OptExportSampleFile(output))
			}
			cfg.Update(sampleOpts)

			err := runSample(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sampleCmd.Flags().IntVarP(
		&limit, "limit", "n", 0,
		"number of publications to sample",
	)
	sampleCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"JSON file for sampled publications",
	)

	return sampleCmd
}

func runSample(ctx context.Context) error {
	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = checkTables(ctx, op); err != nil {
		return err
	}

	res, err := iosample.New(op).Sample(ctx, cfg.Sample.Limit)
	if err != nil {
		return err
	}

	if err = iofs.WriteJSON(cfg.Export.SampleFile, res); err != nil {
		return err
	}

	gn.Info("Saved <em>%d</em> publications to <em>%s</em>",
		len(res), cfg.Export.SampleFile)
	return nil
}
