// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gisgenomics/sampleconf/internal/logging"
	"github.com/gisgenomics/sampleconf/internal/samples"
	"github.com/gisgenomics/sampleconf/internal/samples/layouts"
	"github.com/gisgenomics/sampleconf/internal/sheet"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert OLD NEW",
		Short: "Convert a legacy sample configuration to the current layout",
		Long: `Convert a pre-2019 sample configuration, where read-units are listed
separately from samples, to the layout that nests read-units under samples.
Documents already in the current layout are rewritten unchanged.

Use - as NEW to write to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1])
		},
	}
	cmd.Flags().BoolP("force-overwrite", "f", false, "Force overwriting of existing file")
	return cmd
}

func runConvert(cmd *cobra.Command, input, output string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	logger := logging.FromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return &sheet.IOError{Op: "read", Path: input, Err: err}
	}
	if err := samples.CheckTarget(output, cfg.Force); err != nil {
		return err
	}

	result, err := layouts.NewDefaultPipeline().RunWithMeta(ctx, samples.Source{Content: data, ID: input})
	if err != nil {
		return err
	}
	logger.Info("loaded sample configuration",
		"layout", result.LayoutUsed,
		"samples", len(result.Document.Samples),
		"readunits", result.Document.ReadUnitCount())

	rendered, err := samples.Render(result.Document)
	if err != nil {
		return err
	}
	return samples.Write(output, rendered, cmd.OutOrStdout(), cfg.Force)
}
