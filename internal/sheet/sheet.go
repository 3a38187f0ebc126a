// SPDX-License-Identifier: Apache-2.0

// Package sheet turns a delimited sample sheet into read-unit records.
package sheet

// Schema lists the field names a sample sheet is validated against.
// Columns named in neither list are auxiliary and pass through untouched.
type Schema struct {
	// Mandatory fields must be in the header and non-empty in every row.
	Mandatory []string
	// Recommended fields must be in the header but may be empty per row.
	Recommended []string
	// FileFields are reduced to their base name before key derivation.
	FileFields []string
}

// DefaultSchema is the sample sheet layout expected by the pipelines.
var DefaultSchema = Schema{
	Mandatory:   []string{"sample_id", "fq1"},
	Recommended: []string{"fq2", "run_id", "flowcell_id", "lane_id", "library_id"},
	FileFields:  []string{"fq1", "fq2"},
}

// SampleIDField names the field read-units are grouped by.
const SampleIDField = "sample_id"

func (s Schema) isMandatory(name string) bool   { return contains(s.Mandatory, name) }
func (s Schema) isRecommended(name string) bool { return contains(s.Recommended, name) }
func (s Schema) isFileField(name string) bool   { return contains(s.FileFields, name) }

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

// Field is one named value of a ReadUnit.
type Field struct {
	Name  string
	Value string
}

// ReadUnit is an ordered field-name to value mapping built from one sheet row.
// It is not modified after construction.
type ReadUnit struct {
	fields []Field
	index  map[string]int
}

// NewReadUnit builds a ReadUnit from fields in the given order.
// A repeated name replaces the earlier value in place.
func NewReadUnit(fields ...Field) *ReadUnit {
	ru := &ReadUnit{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		ru.set(f.Name, f.Value)
	}
	return ru
}

func (ru *ReadUnit) set(name, value string) {
	if i, ok := ru.index[name]; ok {
		ru.fields[i].Value = value
		return
	}
	ru.index[name] = len(ru.fields)
	ru.fields = append(ru.fields, Field{Name: name, Value: value})
}

// Get returns the value of the named field.
func (ru *ReadUnit) Get(name string) (string, bool) {
	i, ok := ru.index[name]
	if !ok {
		return "", false
	}
	return ru.fields[i].Value, true
}

// SampleID returns the sample_id value.
func (ru *ReadUnit) SampleID() string {
	v, _ := ru.Get(SampleIDField)
	return v
}

// Fields returns a copy of the fields in insertion order.
func (ru *ReadUnit) Fields() []Field {
	out := make([]Field, len(ru.fields))
	copy(out, ru.fields)
	return out
}

// Len returns the number of fields.
func (ru *ReadUnit) Len() int {
	return len(ru.fields)
}
