// SPDX-License-Identifier: Apache-2.0

// Package tool exposes sample sheet conversion and checking as MCP tools.
package tool

import "github.com/modelcontextprotocol/go-sdk/mcp"

// NewServer returns an MCP server with every tool registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "sampleconf", Version: version}, nil)
	mcp.AddTool(server, MetadataConvertSampleSheet, ConvertSampleSheet)
	mcp.AddTool(server, MetadataCheckSampleConfig, CheckSampleConfig)
	return server
}
