// SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/gisgenomics/sampleconf/internal/samples"
	"github.com/gisgenomics/sampleconf/internal/sheet"
)

// LegacyLayout decodes the pre-2019 shape, where samples map to lists of
// read-unit keys and the read-units live in a separate top-level mapping.
type LegacyLayout struct{}

func NewLegacyLayout() *LegacyLayout {
	return &LegacyLayout{}
}

func (l *LegacyLayout) Name() string {
	return "legacy"
}

// CanHandle accepts any document with a top-level readunits key.
func (l *LegacyLayout) CanHandle(root yaml.MapSlice) bool {
	_, ok := lookup(root, "readunits")
	return ok
}

// Decode nests every referenced read-unit under its sample. The top level
// must hold exactly samples and readunits. Samples come out ordered by id.
func (l *LegacyLayout) Decode(_ context.Context, root yaml.MapSlice) (*samples.Document, error) {
	var present []string
	for _, item := range root {
		present = append(present, scalar(item.Key))
	}
	sort.Strings(present)
	if strings.Join(present, ",") != "readunits,samples" {
		return nil, &samples.LayoutError{
			Layout: l.Name(),
			Reason: fmt.Sprintf("expected only readunits, samples but found %s", strings.Join(present, ", ")),
		}
	}

	ruValue, _ := lookup(root, "readunits")
	ruMap, ok := mapping(ruValue)
	if !ok {
		return nil, &samples.LayoutError{Layout: l.Name(), Reason: "readunits is not a mapping"}
	}
	units := make(map[string]*sheet.ReadUnit, len(ruMap))
	for _, item := range ruMap {
		key := scalar(item.Key)
		fields, ok := mapping(item.Value)
		if !ok {
			return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("readunit %q is not a mapping", key)}
		}
		unit, err := readUnit(l.Name(), key, fields)
		if err != nil {
			return nil, err
		}
		units[key] = unit
	}

	sValue, _ := lookup(root, "samples")
	sampleMap, ok := mapping(sValue)
	if !ok {
		return nil, &samples.LayoutError{Layout: l.Name(), Reason: "samples is not a mapping"}
	}

	doc := &samples.Document{}
	seen := make(map[string]bool, len(sampleMap))
	for _, item := range sampleMap {
		id := scalar(item.Key)
		if seen[id] {
			return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("duplicate sample %q", id)}
		}
		seen[id] = true

		var keys []interface{}
		switch v := item.Value.(type) {
		case nil:
		case []interface{}:
			keys = v
		default:
			return nil, &samples.LayoutError{Layout: l.Name(), Reason: fmt.Sprintf("sample %q is not a list of readunit keys", id)}
		}

		sample := samples.NewSample(id)
		for _, k := range keys {
			key := scalar(k)
			unit, ok := units[key]
			if !ok {
				return nil, &samples.LayoutError{
					Layout: l.Name(),
					Reason: fmt.Sprintf("sample %q references unknown readunit %q", id, key),
				}
			}
			sample.Put(key, unit)
		}
		doc.Samples = append(doc.Samples, sample)
	}

	sort.SliceStable(doc.Samples, func(i, j int) bool {
		return doc.Samples[i].ID < doc.Samples[j].ID
	})
	return doc, nil
}
