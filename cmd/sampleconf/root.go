// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gisgenomics/sampleconf/internal/config"
	"github.com/gisgenomics/sampleconf/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type configKey struct{}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "sampleconf",
		Short: "Build and check sample configuration files",
		Long: `sampleconf turns a delimited sample sheet (one row per read-unit) into a
sample configuration YAML file, checks such files, and upgrades files written
in the legacy layout.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), logging.LevelFromVerbosity(cfg.Verbose, cfg.Quiet))
			ctx := logging.NewContext(cmd.Context(), logger)
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml, json or toml)")
	root.PersistentFlags().CountP("verbose", "v", "Increase verbosity")
	root.PersistentFlags().CountP("quiet", "q", "Decrease verbosity")

	root.AddCommand(
		newCSV2YAMLCmd(),
		newYAMLCheckCmd(),
		newConvertCmd(),
		newMCPCmd(),
	)
	return root
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}
