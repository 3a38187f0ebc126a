// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/gisgenomics/sampleconf/internal/yamlcheck"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MetadataCheckSampleConfig describes the check_sample_config tool.
var MetadataCheckSampleConfig = &mcp.Tool{
	Name: "check_sample_config",
	Description: "Check that a YAML document parses and summarise its top level. " +
		"With schema set, also validate it as a sample configuration: 8-hex read-unit keys, " +
		"non-empty sample_id and fq1, and sample_id matching the enclosing sample.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw YAML document",
			},
			"schema": map[string]interface{}{
				"type":        "boolean",
				"description": "Validate against the sample configuration schema",
			},
		},
	},
}

// InputCheckSampleConfig is the input for the CheckSampleConfig tool.
type InputCheckSampleConfig struct {
	Content string `json:"content"`
	Schema  bool   `json:"schema"`
}

// OutputCheckSampleConfig is the output for the CheckSampleConfig tool.
type OutputCheckSampleConfig struct {
	Valid bool `json:"valid"`
	// ParseError is set when the document is not well-formed YAML.
	ParseError string            `json:"parse_error,omitempty"`
	Kind       string            `json:"kind,omitempty"`
	Entries    []yamlcheck.Entry `json:"entries,omitempty"`
	Violations []string          `json:"violations,omitempty"`
}

// CheckSampleConfig parses the document and, optionally, validates it.
func CheckSampleConfig(_ context.Context, _ *mcp.CallToolRequest, input InputCheckSampleConfig) (*mcp.CallToolResult, OutputCheckSampleConfig, error) {
	if input.Content == "" {
		return nil, OutputCheckSampleConfig{}, fmt.Errorf("content is required")
	}

	checker, err := yamlcheck.NewChecker(input.Schema)
	if err != nil {
		return nil, OutputCheckSampleConfig{}, err
	}
	result, err := checker.Check("document", []byte(input.Content))
	if err != nil {
		return nil, OutputCheckSampleConfig{Valid: false, ParseError: err.Error()}, nil
	}

	return nil, OutputCheckSampleConfig{
		Valid:      result.Valid(),
		Kind:       string(result.Kind),
		Entries:    result.Entries,
		Violations: result.Violations,
	}, nil
}
