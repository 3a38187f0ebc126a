// SPDX-License-Identifier: Apache-2.0

// Package layouts decodes the on-disk shapes of sample configurations.
package layouts

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/gisgenomics/sampleconf/internal/samples"
	"github.com/gisgenomics/sampleconf/internal/sheet"
)

// NewDefaultPipeline returns a pipeline that accepts both layouts.
// The legacy layout is registered first because a legacy document also
// carries a top-level samples key.
func NewDefaultPipeline() *samples.Pipeline {
	return samples.NewPipeline(
		NewLegacyLayout(),
		NewCurrentLayout(),
	)
}

func lookup(m yaml.MapSlice, key string) (interface{}, bool) {
	for _, item := range m {
		if scalar(item.Key) == key {
			return item.Value, true
		}
	}
	return nil, false
}

// mapping accepts a nested mapping; a null node counts as an empty one.
func mapping(v interface{}) (yaml.MapSlice, bool) {
	switch m := v.(type) {
	case nil:
		return yaml.MapSlice{}, true
	case yaml.MapSlice:
		return m, true
	}
	return nil, false
}

func scalar(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case yaml.MapSlice, []interface{}, map[string]interface{}, map[interface{}]interface{}:
		return false
	}
	return true
}

// readUnit converts a decoded read-unit mapping, keeping its field order.
func readUnit(layout, key string, m yaml.MapSlice) (*sheet.ReadUnit, error) {
	fields := make([]sheet.Field, 0, len(m))
	for _, item := range m {
		name := scalar(item.Key)
		if !isScalar(item.Value) {
			return nil, &samples.LayoutError{
				Layout: layout,
				Reason: fmt.Sprintf("readunit %q: field %q is not a scalar", key, name),
			}
		}
		fields = append(fields, sheet.Field{Name: name, Value: scalar(item.Value)})
	}
	return sheet.NewReadUnit(fields...), nil
}
