// SPDX-License-Identifier: Apache-2.0

// Package samples groups read-units into a sample configuration document
// and renders it as YAML.
package samples

import (
	"io"
	"log/slog"
	"sort"

	"github.com/gisgenomics/sampleconf/internal/sheet"
)

// Entry is a read-unit stored under its key.
type Entry struct {
	Key  string
	Unit *sheet.ReadUnit
}

// Sample holds the read-units sharing one sample_id, in insertion order.
type Sample struct {
	ID        string
	ReadUnits []Entry
	index     map[string]int
}

// NewSample creates an empty Sample.
func NewSample(id string) *Sample {
	return &Sample{ID: id, index: make(map[string]int)}
}

// Put stores ru under key. An existing entry with the same key is
// overwritten and keeps its position.
func (s *Sample) Put(key string, ru *sheet.ReadUnit) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[key]; ok {
		s.ReadUnits[i].Unit = ru
		return
	}
	s.index[key] = len(s.ReadUnits)
	s.ReadUnits = append(s.ReadUnits, Entry{Key: key, Unit: ru})
}

// Get returns the read-unit stored under key.
func (s *Sample) Get(key string) (*sheet.ReadUnit, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.ReadUnits[i].Unit, true
}

// Document is the root of a sample configuration.
type Document struct {
	Samples []*Sample
}

// Sample returns the sample with the given id.
func (d *Document) Sample(id string) (*Sample, bool) {
	for _, s := range d.Samples {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// ReadUnitCount returns the number of read-units stored across all samples.
func (d *Document) ReadUnitCount() int {
	n := 0
	for _, s := range d.Samples {
		n += len(s.ReadUnits)
	}
	return n
}

// Stats summarises a Build.
type Stats struct {
	Samples int
	// ReadUnits counts the read-units processed, including any that were
	// overwritten by a later read-unit with the same key.
	ReadUnits int
}

// Build stable-sorts units by sample_id and groups each run of equal ids
// into a Sample, storing every read-unit under sheet.Key. A later read-unit
// whose key collides with an earlier one in the same sample replaces it.
func Build(units []*sheet.ReadUnit, logger *slog.Logger) (*Document, Stats) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sorted := make([]*sheet.ReadUnit, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SampleID() < sorted[j].SampleID()
	})

	doc := &Document{}
	var current *Sample
	for _, ru := range sorted {
		id := ru.SampleID()
		if current == nil || current.ID != id {
			current = NewSample(id)
			doc.Samples = append(doc.Samples, current)
		}
		current.Put(sheet.Key(ru), ru)
	}

	stats := Stats{Samples: len(doc.Samples), ReadUnits: len(units)}
	logger.Info("parsed samples", "samples", stats.Samples, "readunits", stats.ReadUnits)
	if stored := doc.ReadUnitCount(); stored != stats.ReadUnits {
		logger.Warn("readunit keys collided; later rows replaced earlier ones",
			"processed", stats.ReadUnits, "stored", stored)
	}
	return doc, stats
}
