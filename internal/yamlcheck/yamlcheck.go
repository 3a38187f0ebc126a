// SPDX-License-Identifier: Apache-2.0

// Package yamlcheck checks that YAML documents parse, and optionally that
// they are valid sample configurations.
package yamlcheck

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/goccy/go-yaml"
)

//go:embed schema.cue
var sampleSchema string

// Kind names the shape of a document's top level.
type Kind string

const (
	KindDict   Kind = "dict"
	KindList   Kind = "list"
	KindScalar Kind = "scalar"
	KindEmpty  Kind = "empty"
)

// Entry is one top-level key or item of a document.
type Entry struct {
	// Key is empty for list items.
	Key   string `json:"key,omitempty"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Result describes one checked document.
type Result struct {
	Name    string  `json:"name"`
	Kind    Kind    `json:"kind"`
	Entries []Entry `json:"entries,omitempty"`
	// Violations lists schema errors; always empty without schema checking.
	Violations []string `json:"violations,omitempty"`
}

// Valid reports whether the document passed every enabled check.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Checker parses documents and optionally validates them against the
// sample configuration schema.
type Checker struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewChecker creates a Checker. With withSchema unset only syntax is checked.
func NewChecker(withSchema bool) (*Checker, error) {
	c := &Checker{}
	if !withSchema {
		return c, nil
	}
	c.ctx = cuecontext.New()
	c.schema = c.ctx.CompileString(sampleSchema, cue.Filename("schema.cue"))
	if err := c.schema.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile sample schema: %w", err)
	}
	return c, nil
}

// CheckFile reads and checks the document at path.
func (c *Checker) CheckFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: path}, err
	}
	return c.Check(path, data)
}

// Check parses data and summarises its top level. A parse failure is
// returned as an error; schema violations are reported in the Result.
func (c *Checker) Check(name string, data []byte) (Result, error) {
	result := Result{Name: name}

	var doc interface{}
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return result, fmt.Errorf("failed to parse YAML: %w", err)
	}

	switch v := doc.(type) {
	case nil:
		result.Kind = KindEmpty
	case yaml.MapSlice:
		result.Kind = KindDict
		for _, item := range v {
			result.Entries = append(result.Entries, Entry{
				Key:   fmt.Sprint(item.Key),
				Type:  typeName(item.Value),
				Value: flow(item.Value),
			})
		}
	case []interface{}:
		result.Kind = KindList
		for _, item := range v {
			result.Entries = append(result.Entries, Entry{Type: typeName(item), Value: flow(item)})
		}
	default:
		result.Kind = KindScalar
		result.Entries = []Entry{{Type: typeName(v), Value: flow(v)}}
	}

	if c.ctx != nil {
		violations, err := c.validate(name, data)
		if err != nil {
			return result, err
		}
		result.Violations = violations
	}
	return result, nil
}

func (c *Checker) validate(name string, data []byte) ([]string, error) {
	file, err := cueyaml.Extract(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load YAML for schema validation: %w", err)
	}
	value := c.ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to build document for schema validation: %w", err)
	}

	err = c.schema.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil, nil
	}
	var violations []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := strings.Join(e.Path(), "."); path != "" {
			msg = path + ": " + msg
		}
		violations = append(violations, msg)
	}
	return violations, nil
}

// WriteSummary prints the top-level summary of a dict or list document.
func WriteSummary(w io.Writer, r Result) {
	switch r.Kind {
	case KindDict:
		fmt.Fprintln(w, "dict:")
		for _, e := range r.Entries {
			fmt.Fprintln(w, " ", e.Key, e.Value)
		}
	case KindList:
		fmt.Fprintln(w, "list:")
		for _, e := range r.Entries {
			fmt.Fprintln(w, " ", e.Type, e.Value)
		}
	default:
		fmt.Fprintf(w, "%s:\n", r.Kind)
		for _, e := range r.Entries {
			fmt.Fprintln(w, " ", e.Type, e.Value)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "str"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	case yaml.MapSlice:
		return "dict"
	case []interface{}:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}

// flow renders v on a single line.
func flow(v interface{}) string {
	out, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(string(out))
}
