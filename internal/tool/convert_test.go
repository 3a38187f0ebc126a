// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetHeader = "sample_id\tfq1\tfq2\trun_id\tflowcell_id\tlane_id\tlibrary_id\n"

func TestConvertSampleSheet(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputConvertSampleSheet
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputConvertSampleSheet)
	}{
		{
			name:        "empty content returns error",
			input:       InputConvertSampleSheet{Content: ""},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name: "tab-delimited sheet groups by sample",
			input: InputConvertSampleSheet{
				Content: sheetHeader +
					"S1\ta_R1.fq.gz\t\t\t\t\t\n" +
					"S1\ta_R1.fq.gz\ta_R2.fq.gz\t\t\t\t\n" +
					"S0\tb_R1.fq.gz\t\t\t\t\t\n",
			},
			validateOutput: func(t *testing.T, output OutputConvertSampleSheet) {
				assert.Equal(t, 2, output.Samples)
				assert.Equal(t, 3, output.ReadUnits)
				assert.Equal(t, 3, output.StoredReadUnits)
				assert.Contains(t, output.Document, "7f8c927a:")
				assert.Contains(t, output.Document, "a10331db:")
				assert.Less(t, indexOf(output.Document, "S0:"), indexOf(output.Document, "S1:"), "samples are sorted")
			},
		},
		{
			name: "custom delimiter",
			input: InputConvertSampleSheet{
				Content:   "sample_id,fq1,fq2,run_id,flowcell_id,lane_id,library_id\nS1,a.fq,,,,,\n",
				Delimiter: ",",
			},
			validateOutput: func(t *testing.T, output OutputConvertSampleSheet) {
				assert.Equal(t, 1, output.Samples)
				assert.Contains(t, output.Document, "fq1: a.fq")
			},
		},
		{
			name: "duplicate rows collapse onto one key",
			input: InputConvertSampleSheet{
				Content: sheetHeader +
					"S1\t/x/a.fq\t\t\t\t\t\n" +
					"S1\t/y/a.fq\t\t\t\t\t\n",
			},
			validateOutput: func(t *testing.T, output OutputConvertSampleSheet) {
				assert.Equal(t, 2, output.ReadUnits)
				assert.Equal(t, 1, output.StoredReadUnits)
				assert.Contains(t, output.Document, "fq1: /y/a.fq")
			},
		},
		{
			name: "multi-character delimiter is rejected",
			input: InputConvertSampleSheet{
				Content:   sheetHeader,
				Delimiter: "\\t",
			},
			wantErr:     true,
			errContains: "exactly one character",
		},
		{
			name: "missing mandatory header field",
			input: InputConvertSampleSheet{
				Content: "sample_id\tfq2\nS1\tb.fq\n",
			},
			wantErr:     true,
			errContains: "fq1",
		},
		{
			name: "empty mandatory value",
			input: InputConvertSampleSheet{
				Content: sheetHeader + "S1\t\t\t\t\t\t\n",
			},
			wantErr:     true,
			errContains: "mandatory field is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := ConvertSampleSheet(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
