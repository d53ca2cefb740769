package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	fr := &FileResult{
		Path: "data.csv",
		Sheets: []SheetResult{{
			Results: []CellResult{
				{Row: 2, Col: 0, Status: StatusValid, Schema: &SchemaOutcome{Passed: true}},
				{Row: 2, Col: 1, Status: StatusFixed, ErrType: "invalid character '?'", Schema: &SchemaOutcome{Passed: false}},
				{Row: 3, Col: 0, Status: StatusInvalid, ErrType: "invalid character '?'"},
				{Row: 3, Col: 1, Status: StatusEmpty},
			},
		}},
	}

	sum := fr.Summarize()
	assert.Equal(t, 4, sum.TotalCells)
	assert.Equal(t, 1, sum.Valid)
	assert.Equal(t, 1, sum.Fixed)
	assert.Equal(t, 1, sum.Invalid)
	assert.Equal(t, 2, sum.ParsedCells())
	assert.Equal(t, 2, sum.ParseErrors())
	assert.Equal(t, 1, sum.SchemaPassed)
	assert.Equal(t, 1, sum.SchemaFailed)
	assert.Equal(t, map[string]int{"invalid character '?'": 2}, sum.ErrorTypes)
}

func TestFixedRows(t *testing.T) {
	sheet := SheetResult{
		Header: []string{"a", "b"},
		Rows: [][]string{
			{`{'x': 1}`, `{"y": 2}`},
			{`broken`, ``},
		},
		Results: []CellResult{
			{Row: 2, Col: 0, Status: StatusFixed, Fixed: `{"x": 1}`},
			{Row: 2, Col: 1, Status: StatusValid},
			{Row: 3, Col: 0, Status: StatusInvalid, Fixed: `broken`},
			{Row: 3, Col: 1, Status: StatusEmpty},
		},
	}

	fixed := sheet.FixedRows()
	assert.Equal(t, [][]string{
		{`{"x": 1}`, `{"y": 2}`},
		{`broken`, ``},
	}, fixed)

	// Originals stay untouched.
	assert.Equal(t, `{'x': 1}`, sheet.Rows[0][0])
}

func TestFixedRowsNoHeader(t *testing.T) {
	sheet := SheetResult{
		Rows: [][]string{{`{'x': 1}`}},
		Results: []CellResult{
			{Row: 1, Col: 0, Status: StatusFixed, Fixed: `{"x": 1}`},
		},
	}

	assert.Equal(t, [][]string{{`{"x": 1}`}}, sheet.FixedRows())
}
