// Package report renders scan results and writes fixed output files.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"csvjsoncheck/pkg/checker"
	"csvjsoncheck/pkg/checker/models"
)

// Reporter turns a FileResult into a human-readable report on Out and,
// when any cell was repaired, a fixed copy of the input file.
type Reporter struct {
	out  io.Writer
	opts checker.Options
}

// New returns a Reporter writing to out.
func New(out io.Writer, opts checker.Options) *Reporter {
	return &Reporter{out: out, opts: opts}
}

// Run prints the per-cell listing (unless summary-only), writes the
// fixed file if any cell was repaired, and prints the summary block.
func (r *Reporter) Run(fr *models.FileResult) error {
	sum := fr.Summarize()

	if !r.opts.SummaryOnly {
		r.printCells(fr)
	}

	if sum.Fixed > 0 {
		dest, err := r.writeFixed(fr)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "\nFixed file saved as: %s\n", dest)
	} else {
		fmt.Fprintln(r.out, "\nNo JSON errors were fixed.")
	}

	r.printSummary(sum)
	return nil
}

func (r *Reporter) printCells(fr *models.FileResult) {
	for i := range fr.Sheets {
		sheet := &fr.Sheets[i]
		for _, res := range sheet.Results {
			r.printCell(sheet.Name, res)
		}
	}
}

func (r *Reporter) printCell(sheetName string, res models.CellResult) {
	loc := fmt.Sprintf("Row %d, Column %s", res.Row, ColumnLetter(res.Col))
	if sheetName != "" {
		loc = fmt.Sprintf("[%s] %s", sheetName, loc)
	}

	switch res.Status {
	case models.StatusFixed:
		fmt.Fprintf(r.out, "%s: JSON format is incorrect - %s\n", loc, res.Err)
		fmt.Fprintf(r.out, "%s: JSON fixed successfully\n", loc)
	case models.StatusInvalid:
		fmt.Fprintf(r.out, "%s: JSON format is incorrect - %s\n", loc, res.Err)
		fmt.Fprintf(r.out, "%s: Could not fix JSON - %s\n", loc, res.FixErr)
	}

	if res.Schema != nil && !res.Schema.Passed {
		fmt.Fprintf(r.out, "%s: Schema validation failed\n", loc)
		for _, e := range res.Schema.Errors {
			fmt.Fprintf(r.out, "  - %s at %s\n", e.Description, e.Field)
		}
	}
}

func (r *Reporter) printSummary(sum models.Summary) {
	fmt.Fprintln(r.out, "\n===== JSON Check Summary =====")
	fmt.Fprintf(r.out, "Total cells checked: %d\n", sum.TotalCells)
	fmt.Fprintf(r.out, "Total JSON cells found: %d\n", sum.ParsedCells())
	fmt.Fprintf(r.out, "Total errors found: %d\n", sum.ParseErrors())
	fmt.Fprintf(r.out, "Errors fixed: %d\n", sum.Fixed)
	fmt.Fprintf(r.out, "Errors not fixed: %d\n", sum.Invalid)
	fmt.Fprintf(r.out, "Schema validation passed: %d\n", sum.SchemaPassed)
	fmt.Fprintf(r.out, "Schema validation failed: %d\n", sum.SchemaFailed)

	if len(sum.ErrorTypes) > 0 {
		fmt.Fprintln(r.out, "\nError types encountered:")
		types := make([]string, 0, len(sum.ErrorTypes))
		for errType := range sum.ErrorTypes {
			types = append(types, errType)
		}
		sort.Strings(types)
		for _, errType := range types {
			fmt.Fprintf(r.out, "  - %s: %d occurrences\n", errType, sum.ErrorTypes[errType])
		}
	}
}

// ColumnLetter renders a 0-based column index in spreadsheet style:
// A, B, ... Z, AA, AB.
func ColumnLetter(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return strconv.Itoa(col)
	}
	return name
}
