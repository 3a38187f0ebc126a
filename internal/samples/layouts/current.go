// SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/gisgenomics/sampleconf/internal/samples"
)

// CurrentLayout decodes documents shaped
// samples -> <sample_id> -> readunits -> <key> -> fields.
type CurrentLayout struct{}

func NewCurrentLayout() *CurrentLayout {
	return &CurrentLayout{}
}

func (l *CurrentLayout) Name() string {
	return "current"
}

// CanHandle accepts documents with a top-level samples mapping and no
// top-level readunits.
func (l *CurrentLayout) CanHandle(root yaml.MapSlice) bool {
	if _, ok := lookup(root, "readunits"); ok {
		return false
	}
	v, ok := lookup(root, "samples")
	if !ok {
		return false
	}
	_, ok = mapping(v)
	return ok
}

// Decode reads samples and read-units in document order. Read-unit keys
// are taken as written, not recomputed.
func (l *CurrentLayout) Decode(_ context.Context, root yaml.MapSlice) (*samples.Document, error) {
	v, _ := lookup(root, "samples")
	sampleMap, _ := mapping(v)

	doc := &samples.Document{}
	seen := make(map[string]bool, len(sampleMap))
	for _, item := range sampleMap {
		id := scalar(item.Key)
		if seen[id] {
			return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("duplicate sample %q", id)}
		}
		seen[id] = true

		body, ok := mapping(item.Value)
		if !ok {
			return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("sample %q is not a mapping", id)}
		}
		ruValue, _ := lookup(body, "readunits")
		units, ok := mapping(ruValue)
		if !ok {
			return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("sample %q: readunits is not a mapping", id)}
		}

		sample := samples.NewSample(id)
		for _, ru := range units {
			key := scalar(ru.Key)
			fields, ok := mapping(ru.Value)
			if !ok {
				return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("readunit %q is not a mapping", key)}
			}
			unit, err := readUnit(l.Name(), key, fields)
			if err != nil {
				return nil, err
			}
			sample.Put(key, unit)
		}
		doc.Samples = append(doc.Samples, sample)
	}
	return doc, nil
}
