// SPDX-License-Identifier: Apache-2.0

package sheet

import "fmt"

// SchemaError reports a missing mandatory header field, a missing or empty
// mandatory row value, or a recommended field absent from the header.
type SchemaError struct {
	Field string
	// Line is the input line of the offending row; 0 means the header.
	Line   int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("header: %s: %q", e.Reason, e.Field)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Field)
}

// FormatError wraps a structural error reported by the tabular reader,
// such as a row with the wrong number of columns.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "malformed sample sheet: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError reports an unreadable input, an unwritable output, or an output
// that already exists and may not be overwritten.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
