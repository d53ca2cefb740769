// Package schema loads JSON Schema documents and validates parsed cells
// against them.
package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"csvjsoncheck/pkg/checker/models"
)

// Document is a compiled JSON Schema plus the file it came from.
type Document struct {
	// Path is the source file as given on the command line.
	Path string

	compiled *gojsonschema.Schema
}

// LoadFile reads and compiles a JSON Schema document. A missing file or
// a document that fails to compile is a configuration error.
func LoadFile(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve schema path %q: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("schema file %q: %w", path, err)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + abs))
	if err != nil {
		return nil, fmt.Errorf("load schema %q: %w", path, err)
	}

	return &Document{Path: path, compiled: compiled}, nil
}

// Validate checks a JSON text against the schema and reports every
// violation. The text must already be known to parse.
func (d *Document) Validate(jsonText string) (*models.SchemaOutcome, error) {
	result, err := d.compiled.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return nil, fmt.Errorf("validate against %q: %w", d.Path, err)
	}

	outcome := &models.SchemaOutcome{Passed: result.Valid()}
	for _, desc := range result.Errors() {
		outcome.Errors = append(outcome.Errors, models.SchemaError{
			Field:       desc.Field(),
			Description: desc.Description(),
		})
	}
	return outcome, nil
}

// Set maps column indexes to schema documents, with an optional default
// applied to unmapped columns. Loaded once at startup, read-only after.
type Set struct {
	// Default governs columns without a per-column entry. May be nil.
	Default *Document
	// ByColumn maps a 0-based column index to its schema.
	ByColumn map[int]*Document
}

// NewSet returns an empty schema set.
func NewSet() *Set {
	return &Set{ByColumn: make(map[int]*Document)}
}

// ForColumn returns the schema governing a column: the per-column entry
// if present, else the default, else nil.
func (s *Set) ForColumn(col int) *Document {
	if s == nil {
		return nil
	}
	if d, ok := s.ByColumn[col]; ok {
		return d
	}
	return s.Default
}

// Empty reports whether the set holds no schema at all.
func (s *Set) Empty() bool {
	return s == nil || (s.Default == nil && len(s.ByColumn) == 0)
}
