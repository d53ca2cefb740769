package checker

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"csvjsoncheck/pkg/checker/models"
)

// Check scans the file at path cell by cell and returns per-cell results
// in (row, column) order. The file format is chosen by extension: .xlsx
// and .xlsm open as workbooks, everything else is read as CSV.
//
// Malformed file structure is fatal; malformed JSON inside a cell is
// never fatal and lands in the cell results instead.
func Check(path string, opts Options) (*models.FileResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return checkWorkbook(path, opts)
	default:
		return checkCSV(path, opts)
	}
}

func checkCSV(path string, opts Options) (*models.FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ScanError{Path: path, Stage: "csv", Err: err}
	}
	defer f.Close()

	opts.Logger.Debug().Str("path", path).Msg("scanning csv")

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are fine

	var sheet models.SheetResult
	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ScanError{Path: path, Stage: "csv", Err: err}
		}
		rowNum++
		if rowNum == 1 && !opts.NoHeader {
			sheet.Header = record
			continue
		}
		walkRow(&sheet, rowNum, record, opts)
	}

	return &models.FileResult{Path: path, Sheets: []models.SheetResult{sheet}}, nil
}

func checkWorkbook(path string, opts Options) (*models.FileResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ScanError{Path: path, Stage: "workbook", Err: err}
	}
	defer f.Close()

	opts.Logger.Debug().Str("path", path).Msg("scanning workbook")

	result := &models.FileResult{Path: path}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &ScanError{Path: path, Stage: "workbook", Err: err}
		}

		sheet := models.SheetResult{Name: name}
		for rowIdx, record := range rows {
			rowNum := rowIdx + 1
			if rowNum == 1 && !opts.NoHeader {
				sheet.Header = record
				continue
			}
			walkRow(&sheet, rowNum, record, opts)
		}
		result.Sheets = append(result.Sheets, sheet)
	}

	return result, nil
}

// walkRow appends the record and one cell result per field.
func walkRow(sheet *models.SheetResult, rowNum int, record []string, opts Options) {
	sheet.Rows = append(sheet.Rows, record)
	for col, cell := range record {
		res := processCell(sheet.Name, rowNum, col, cell, opts.Schemas)
		logCell(opts.Logger, res)
		sheet.Results = append(sheet.Results, res)
	}
}

func logCell(logger zerolog.Logger, res models.CellResult) {
	switch res.Status {
	case models.StatusFixed:
		logger.Debug().
			Int("row", res.Row).Int("col", res.Col).
			Str("error", res.Err).
			Msg("cell repaired")
	case models.StatusInvalid:
		logger.Debug().
			Int("row", res.Row).Int("col", res.Col).
			Str("error", res.FixErr).
			Msg("cell unrepairable")
	}
}
