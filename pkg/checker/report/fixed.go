package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"csvjsoncheck/pkg/checker"
	"csvjsoncheck/pkg/checker/models"
)

// FixedPath derives the default fixed-output path for an input file:
// data.csv becomes data_fixed.csv.
func FixedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_fixed" + ext
}

// writeFixed writes the fixed copy of the input and returns its path.
// The destination's extension picks the format.
func (r *Reporter) writeFixed(fr *models.FileResult) (string, error) {
	dest := r.opts.OutputPath
	if dest == "" {
		dest = FixedPath(fr.Path)
	}

	var err error
	switch strings.ToLower(filepath.Ext(dest)) {
	case ".xlsx", ".xlsm":
		err = writeFixedWorkbook(fr, dest)
	default:
		err = writeFixedCSV(fr, dest)
	}
	if err != nil {
		return "", &checker.ScanError{Path: dest, Stage: "write", Err: err}
	}
	return dest, nil
}

func writeFixedCSV(fr *models.FileResult, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	sheet := &fr.Sheets[0]
	if sheet.Header != nil {
		if err := w.Write(sheet.Header); err != nil {
			f.Close()
			return err
		}
	}
	for _, row := range sheet.FixedRows() {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFixedWorkbook(fr *models.FileResult, dest string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i := range fr.Sheets {
		sheet := &fr.Sheets[i]
		name := sheet.Name
		if name == "" {
			name = "Sheet1"
		}
		if i == 0 {
			if name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", name); err != nil {
					return err
				}
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}

		rowNum := 1
		if sheet.Header != nil {
			if err := setRow(f, name, rowNum, sheet.Header); err != nil {
				return err
			}
			rowNum++
		}
		for _, row := range sheet.FixedRows() {
			if err := setRow(f, name, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}

	return f.SaveAs(dest)
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for col, val := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}
