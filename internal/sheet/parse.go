// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultDelimiter separates columns unless the caller picks another one.
const DefaultDelimiter = '\t'

// Parser reads sample sheets into ReadUnits.
type Parser struct {
	schema    Schema
	delimiter rune
	logger    *slog.Logger
}

// Option customises a Parser.
type Option func(*Parser)

// WithSchema replaces DefaultSchema.
func WithSchema(s Schema) Option {
	return func(p *Parser) { p.schema = s }
}

// NewParser creates a Parser splitting columns on delimiter.
// A nil logger discards diagnostics.
func NewParser(delimiter rune, logger *slog.Logger, opts ...Option) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Parser{
		schema:    DefaultSchema,
		delimiter: delimiter,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads the sheet at path.
func (p *Parser) ParseFile(path string) ([]*ReadUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return p.Parse(bytes.NewReader(data))
}

// Parse reads a header row followed by one read-unit per row and returns
// the read-units in input order. Blank rows are skipped.
func (p *Parser) Parse(r io.Reader) ([]*ReadUnit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Path: "sample sheet", Err: err}
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = p.delimiter
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &FormatError{Err: err}
	}
	p.logger.Debug("parsed field names", "header", header)

	columns := make(map[string]int, len(header))
	var auxiliary []string
	for i, name := range header {
		if _, seen := columns[name]; !seen && !p.schema.isMandatory(name) && !p.schema.isRecommended(name) {
			auxiliary = append(auxiliary, name)
		}
		columns[name] = i
	}
	for _, f := range p.schema.Mandatory {
		if _, ok := columns[f]; !ok {
			return nil, &SchemaError{Field: f, Reason: "missing mandatory field"}
		}
	}

	var units []*ReadUnit
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Err: err}
		}
		if isBlank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)

		ru, err := p.readUnit(record, columns, auxiliary, line)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("parsed readunit", "key", p.schema.Key(ru), "line", line, "fields", ru.Fields())
		units = append(units, ru)
	}
	return units, nil
}

func (p *Parser) readUnit(record []string, columns map[string]int, auxiliary []string, line int) (*ReadUnit, error) {
	ru := &ReadUnit{
		fields: make([]Field, 0, len(record)),
		index:  make(map[string]int, len(record)),
	}
	for _, f := range p.schema.Mandatory {
		v := strings.TrimSpace(record[columns[f]])
		if v == "" {
			return nil, &SchemaError{Field: f, Line: line, Reason: "mandatory field is empty"}
		}
		ru.set(f, v)
	}
	for _, f := range p.schema.Recommended {
		i, ok := columns[f]
		if !ok {
			return nil, &SchemaError{Field: f, Line: line, Reason: "recommended field missing from header"}
		}
		if v := strings.TrimSpace(record[i]); v != "" {
			ru.set(f, v)
		}
	}
	for _, name := range auxiliary {
		ru.set(name, record[columns[name]])
	}
	return ru, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
