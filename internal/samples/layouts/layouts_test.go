// SPDX-License-Identifier: Apache-2.0

package layouts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisgenomics/sampleconf/internal/samples"
	"github.com/gisgenomics/sampleconf/internal/samples/layouts"
	"github.com/gisgenomics/sampleconf/internal/sheet"
)

const legacyDoc = `samples:
  S2:
    - k2
  S1:
    - k1
    - k3
readunits:
  k1:
    sample_id: S1
    fq1: /data/a_R1.fq.gz
    fq2: /data/a_R2.fq.gz
    lane_id: 1
  k2:
    sample_id: S2
    fq1: b_R1.fq.gz
  k3:
    sample_id: S1
    fq1: c_R1.fq.gz
`

const currentDoc = `samples:
  S1:
    readunits:
      7f8c927a:
        sample_id: S1
        fq1: a_R1.fq.gz
      a10331db:
        sample_id: S1
        fq1: a_R1.fq.gz
        fq2: a_R2.fq.gz
`

func run(t *testing.T, content string) (samples.LoadResult, error) {
	t.Helper()
	p := layouts.NewDefaultPipeline()
	return p.RunWithMeta(context.Background(), samples.Source{Content: []byte(content), ID: "test.yaml"})
}

func TestDefaultPipeline_RegisteredLayouts(t *testing.T) {
	assert.Equal(t, []string{"legacy", "current"}, layouts.NewDefaultPipeline().RegisteredLayouts())
}

func TestCurrentLayout_RoundTrip(t *testing.T) {
	result, err := run(t, currentDoc)
	require.NoError(t, err)
	assert.Equal(t, "current", result.LayoutUsed)

	doc := result.Document
	require.Len(t, doc.Samples, 1)
	s1 := doc.Samples[0]
	assert.Equal(t, "S1", s1.ID)
	require.Len(t, s1.ReadUnits, 2)
	assert.Equal(t, "7f8c927a", s1.ReadUnits[0].Key)
	assert.Equal(t, sheet.Key(s1.ReadUnits[0].Unit), s1.ReadUnits[0].Key)

	out, err := samples.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, currentDoc, string(out))
}

func TestLegacyLayout_Convert(t *testing.T) {
	result, err := run(t, legacyDoc)
	require.NoError(t, err)
	assert.Equal(t, "legacy", result.LayoutUsed)

	doc := result.Document
	require.Len(t, doc.Samples, 2)
	assert.Equal(t, "S1", doc.Samples[0].ID)
	assert.Equal(t, "S2", doc.Samples[1].ID)

	s1 := doc.Samples[0]
	require.Len(t, s1.ReadUnits, 2)
	assert.Equal(t, "k1", s1.ReadUnits[0].Key, "legacy keys are kept as written")
	assert.Equal(t, "k3", s1.ReadUnits[1].Key)

	lane, ok := s1.ReadUnits[0].Unit.Get("lane_id")
	require.True(t, ok)
	assert.Equal(t, "1", lane)

	fq2, ok := s1.ReadUnits[0].Unit.Get("fq2")
	require.True(t, ok)
	assert.Equal(t, "/data/a_R2.fq.gz", fq2)
}

func TestLegacyLayout_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "unexpected top-level key",
			content:     "samples: {}\nreadunits: {}\nextra: 1\n",
			errContains: "expected only readunits, samples",
		},
		{
			name:        "missing samples key",
			content:     "readunits: {}\n",
			errContains: "expected only readunits, samples",
		},
		{
			name:        "unknown readunit key",
			content:     "samples:\n  S1:\n    - nope\nreadunits: {}\n",
			errContains: `unknown readunit "nope"`,
		},
		{
			name:        "sample is not a list",
			content:     "samples:\n  S1: k1\nreadunits:\n  k1:\n    sample_id: S1\n",
			errContains: "not a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.content)
			require.Error(t, err)
			var layoutErr *samples.LayoutError
			require.True(t, errors.As(err, &layoutErr), "expected LayoutError, got %T: %v", err, err)
			assert.Equal(t, "legacy", layoutErr.Layout)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestCurrentLayout_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "sample is not a mapping",
			content:     "samples:\n  S1: [a, b]\n",
			errContains: `sample "S1" is not a mapping`,
		},
		{
			name:        "nested field value",
			content:     "samples:\n  S1:\n    readunits:\n      abcdef01:\n        fq1: [x]\n",
			errContains: "not a scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.content)
			require.Error(t, err)
			var layoutErr *samples.LayoutError
			require.True(t, errors.As(err, &layoutErr), "expected LayoutError, got %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestPipeline_UnsupportedDocument(t *testing.T) {
	_, err := run(t, "something: else\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no layout matches")
}

func TestPipeline_InvalidYAML(t *testing.T) {
	_, err := run(t, "samples: [unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestPipeline_NoLayouts(t *testing.T) {
	p := samples.NewPipeline()
	_, err := p.Run(context.Background(), samples.Source{Content: []byte(currentDoc), ID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sample configuration")
}
