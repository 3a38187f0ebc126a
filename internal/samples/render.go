// SPDX-License-Identifier: Apache-2.0

package samples

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

const (
	samplesKey   = "samples"
	readUnitsKey = "readunits"
)

// MapSlice converts the document to an ordered YAML mapping. Every node is
// built fresh, so no two positions in the tree share a value.
func (d *Document) MapSlice() yaml.MapSlice {
	samples := make(yaml.MapSlice, 0, len(d.Samples))
	for _, s := range d.Samples {
		units := make(yaml.MapSlice, 0, len(s.ReadUnits))
		for _, e := range s.ReadUnits {
			fields := e.Unit.Fields()
			unit := make(yaml.MapSlice, 0, len(fields))
			for _, f := range fields {
				unit = append(unit, yaml.MapItem{Key: f.Name, Value: f.Value})
			}
			units = append(units, yaml.MapItem{Key: e.Key, Value: unit})
		}
		samples = append(samples, yaml.MapItem{
			Key:   s.ID,
			Value: yaml.MapSlice{{Key: readUnitsKey, Value: units}},
		})
	}
	return yaml.MapSlice{{Key: samplesKey, Value: samples}}
}

// Render serialises the document as block-style YAML with every value
// written out in full.
func Render(d *Document) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(d.MapSlice(), yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("failed to render sample configuration: %w", err)
	}
	return out, nil
}
