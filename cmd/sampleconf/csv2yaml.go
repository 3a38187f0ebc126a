// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gisgenomics/sampleconf/internal/logging"
	"github.com/gisgenomics/sampleconf/internal/samples"
	"github.com/gisgenomics/sampleconf/internal/sheet"
)

type csv2yamlOptions struct {
	input  string
	output string
}

func newCSV2YAMLCmd() *cobra.Command {
	var opts csv2yamlOptions

	cmd := &cobra.Command{
		Use:   "csv2yaml",
		Short: "Create a sample configuration from a sample sheet",
		Long: `Create a sample configuration (YAML) from a delimited file describing your samples.

Mandatory columns: ` + strings.Join(sheet.DefaultSchema.Mandatory, ", ") + `.
Recommended columns: ` + strings.Join(sheet.DefaultSchema.Recommended, ", ") + `.
Leave unknown values empty. Any other column is copied into each read-unit.

Examples:
  sampleconf csv2yaml -i samples.tsv -o samples.yaml
  sampleconf csv2yaml -i samples.csv -d , -o -      # write to stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSV2YAML(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "csv", "i", "", "Sample sheet with header row (required)")
	cmd.Flags().StringVarP(&opts.output, "yaml", "o", "", "Output config file, - for stdout (required)")
	cmd.Flags().StringP("delimiter", "d", string(sheet.DefaultDelimiter), "Column delimiter (default is <tab>)")
	cmd.Flags().BoolP("force-overwrite", "f", false, "Force overwriting of existing file")

	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("yaml")

	return cmd
}

func runCSV2YAML(cmd *cobra.Command, opts csv2yamlOptions) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	logger := logging.FromContext(ctx)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(opts.input); err != nil {
		return &sheet.IOError{Op: "open", Path: opts.input, Err: err}
	}
	if err := samples.CheckTarget(opts.output, cfg.Force); err != nil {
		return err
	}

	units, err := sheet.NewParser(cfg.DelimiterRune(), logger).ParseFile(opts.input)
	if err != nil {
		return err
	}
	doc, _ := samples.Build(units, logger)

	data, err := samples.Render(doc)
	if err != nil {
		return err
	}
	return samples.Write(opts.output, data, cmd.OutOrStdout(), cfg.Force)
}
