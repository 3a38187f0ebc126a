// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gisgenomics/sampleconf/internal/logging"
	"github.com/gisgenomics/sampleconf/internal/yamlcheck"
)

func newYAMLCheckCmd() *cobra.Command {
	var (
		printData bool
		schema    bool
	)

	cmd := &cobra.Command{
		Use:   "yamlcheck [flags] FILE...",
		Short: "Check that YAML files parse",
		Long: `Parse each YAML file and report OK or FAIL per file.

With --print the top level of each document is summarised. With --schema each
document is also validated as a sample configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return fmt.Errorf("no YAML files given")
			}

			checker, err := yamlcheck.NewChecker(schema)
			if err != nil {
				return err
			}
			logger := logging.FromContext(cmd.Context())
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				result, err := checker.CheckFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL: %s: %v\n", path, err)
					continue
				}
				if printData {
					yamlcheck.WriteSummary(out, result)
				}
				if !result.Valid() {
					failed++
					for _, v := range result.Violations {
						logger.Error("schema violation", "file", path, "violation", v)
					}
					fmt.Fprintf(out, "FAIL: %s: %d schema violation(s)\n", path, len(result.Violations))
					continue
				}
				fmt.Fprintf(out, "OK: %s\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&printData, "print", "p", false, "Print the top level of each document")
	cmd.Flags().BoolVar(&schema, "schema", false, "Validate as a sample configuration")

	return cmd
}
