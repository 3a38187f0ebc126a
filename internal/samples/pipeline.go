// SPDX-License-Identifier: Apache-2.0

package samples

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Source is a sample configuration document to be decoded.
type Source struct {
	// Content is the raw YAML.
	Content []byte
	ID      string
}

// Layout decodes one on-disk shape of a sample configuration.
type Layout interface {
	CanHandle(root yaml.MapSlice) bool
	Decode(ctx context.Context, root yaml.MapSlice) (*Document, error)
	Name() string
}

// LayoutError reports a document that does not match the layout it was
// detected as.
type LayoutError struct {
	Layout string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s layout: %s", e.Layout, e.Reason)
}

type Pipeline struct {
	layouts []Layout
}

// NewPipeline creates a Pipeline trying layouts in the given order.
func NewPipeline(layouts ...Layout) *Pipeline {
	return &Pipeline{layouts: layouts}
}

// LoadResult is the output of a successful pipeline run.
type LoadResult struct {
	Document   *Document
	LayoutUsed string
}

func (p *Pipeline) Run(ctx context.Context, source Source) (*Document, error) {
	result, err := p.RunWithMeta(ctx, source)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

func (p *Pipeline) RunWithMeta(ctx context.Context, source Source) (LoadResult, error) {
	var root yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(source.Content, &root, yaml.UseOrderedMap()); err != nil {
		return LoadResult{}, fmt.Errorf("failed to parse %q: %w", source.ID, err)
	}

	layout, err := p.selectLayout(source, root)
	if err != nil {
		return LoadResult{}, err
	}

	doc, err := layout.Decode(ctx, root)
	if err != nil {
		return LoadResult{}, fmt.Errorf("layout %q failed for %q: %w", layout.Name(), source.ID, err)
	}
	return LoadResult{Document: doc, LayoutUsed: layout.Name()}, nil
}

// selectLayout returns the first registered layout that can handle the document.
func (p *Pipeline) selectLayout(source Source, root yaml.MapSlice) (Layout, error) {
	for _, layout := range p.layouts {
		if layout.CanHandle(root) {
			return layout, nil
		}
	}
	return nil, fmt.Errorf("unsupported sample configuration: no layout matches %q", source.ID)
}

// RegisteredLayouts returns the names of all registered layouts.
func (p *Pipeline) RegisteredLayouts() []string {
	names := make([]string, len(p.layouts))
	for i, layout := range p.layouts {
		names[i] = layout.Name()
	}
	return names
}
