// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gisgenomics/sampleconf/internal/logging"
	"github.com/gisgenomics/sampleconf/internal/tool"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the conversion tools over MCP on stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:
  - convert_sample_sheet: sample sheet text to sample configuration YAML
  - check_sample_config: parse and optionally schema-check a YAML document

Logs go to stderr since stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logging.FromContext(ctx).Info("starting MCP server", "version", version)
			return tool.NewServer(version).Run(ctx, &mcp.StdioTransport{})
		},
	}
}
