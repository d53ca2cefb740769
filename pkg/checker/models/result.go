// Package models defines data structures for cell scan results.
package models

// Status classifies the parse outcome of a single cell.
type Status string

const (
	// StatusValid means the cell parsed as strict JSON on the first attempt.
	StatusValid Status = "valid"
	// StatusFixed means the cell parsed only after repair heuristics ran.
	StatusFixed Status = "fixed"
	// StatusInvalid means the cell failed to parse even after repair.
	StatusInvalid Status = "invalid"
	// StatusEmpty means the cell was blank and skipped entirely.
	StatusEmpty Status = "empty"
)

// SchemaError describes a single JSON Schema violation.
type SchemaError struct {
	// Field is the path of the offending property ("(root)" for the document).
	Field string `json:"field"`
	// Description is the human-readable violation message.
	Description string `json:"description"`
}

// SchemaOutcome records the result of validating a parsed cell against
// a JSON Schema. Nil on a CellResult means no schema applied.
type SchemaOutcome struct {
	Passed bool          `json:"passed"`
	Errors []SchemaError `json:"errors,omitempty"`
}

// CellResult captures everything known about one scanned cell.
// It is immutable once the cell processor returns it.
type CellResult struct {
	// Sheet is the workbook sheet name; empty for CSV input.
	Sheet string `json:"sheet,omitempty"`
	// Row is the physical row number (1-based, header included).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
	// Raw is the original cell text.
	Raw string `json:"raw"`
	// Status is the parse outcome.
	Status Status `json:"status"`
	// Fixed is the best-effort repaired text. Set whenever repair ran,
	// even if the result still failed to parse.
	Fixed string `json:"fixed,omitempty"`
	// Err is the strict-parse error message. Set for fixed and invalid cells.
	Err string `json:"error,omitempty"`
	// ErrType is a coarse class of Err used for the summary histogram.
	ErrType string `json:"error_type,omitempty"`
	// FixErr is the re-parse error after repair. Set for invalid cells only.
	FixErr string `json:"fix_error,omitempty"`
	// Schema is the validation outcome, nil when no schema governed the
	// column or the cell never parsed.
	Schema *SchemaOutcome `json:"schema,omitempty"`
}

// Summary aggregates cell results per status and schema outcome.
type Summary struct {
	// TotalCells counts every scanned cell, empty ones included.
	TotalCells int `json:"total_cells"`
	Valid      int `json:"valid"`
	Fixed      int `json:"fixed"`
	Invalid    int `json:"invalid"`
	// SchemaPassed and SchemaFailed count cells that were validated.
	SchemaPassed int `json:"schema_passed"`
	SchemaFailed int `json:"schema_failed"`
	// ErrorTypes maps a parse error class to its occurrence count.
	ErrorTypes map[string]int `json:"error_types,omitempty"`
}

// ParsedCells returns the number of cells holding usable JSON.
func (s Summary) ParsedCells() int { return s.Valid + s.Fixed }

// ParseErrors returns the number of cells that failed strict parsing.
func (s Summary) ParseErrors() int { return s.Fixed + s.Invalid }

func (s *Summary) add(r CellResult) {
	s.TotalCells++
	switch r.Status {
	case StatusValid:
		s.Valid++
	case StatusFixed:
		s.Fixed++
	case StatusInvalid:
		s.Invalid++
	case StatusEmpty:
		return
	}
	if r.ErrType != "" {
		if s.ErrorTypes == nil {
			s.ErrorTypes = make(map[string]int)
		}
		s.ErrorTypes[r.ErrType]++
	}
	if r.Schema != nil {
		if r.Schema.Passed {
			s.SchemaPassed++
		} else {
			s.SchemaFailed++
		}
	}
}
