package models

import "slices"

// SheetResult holds the scanned rows and per-cell outcomes for one sheet.
// CSV input produces a single SheetResult with an empty Name.
type SheetResult struct {
	// Name is the sheet name; empty for CSV input.
	Name string `json:"name,omitempty"`
	// Header is the pass-through header row, nil when none was read.
	Header []string `json:"header,omitempty"`
	// Rows contains the raw data records in file order.
	Rows [][]string `json:"rows,omitempty"`
	// Results contains one CellResult per data cell in (row, col) order.
	Results []CellResult `json:"results,omitempty"`
}

// FixedRows returns the sheet's rows with repaired text substituted for
// fixed cells. Valid and invalid cells keep their original text.
func (s *SheetResult) FixedRows() [][]string {
	rows := make([][]string, len(s.Rows))
	for i := range s.Rows {
		rows[i] = slices.Clone(s.Rows[i])
	}
	offset := 1
	if s.Header != nil {
		offset = 2
	}
	for _, r := range s.Results {
		if r.Status != StatusFixed {
			continue
		}
		i := r.Row - offset
		if i >= 0 && i < len(rows) && r.Col < len(rows[i]) {
			rows[i][r.Col] = r.Fixed
		}
	}
	return rows
}

// FileResult is the full outcome of scanning one input file.
type FileResult struct {
	// Path is the scanned input file.
	Path string `json:"path"`
	// Sheets holds per-sheet results; exactly one entry for CSV input.
	Sheets []SheetResult `json:"sheets"`
}

// Summarize folds every cell result into aggregate counts.
func (f *FileResult) Summarize() Summary {
	var sum Summary
	for i := range f.Sheets {
		for _, r := range f.Sheets[i].Results {
			sum.add(r)
		}
	}
	return sum
}
