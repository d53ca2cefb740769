package checker

import (
	"encoding/json"
	"regexp"
	"strings"

	"csvjsoncheck/pkg/checker/models"
	"csvjsoncheck/pkg/checker/repair"
	"csvjsoncheck/pkg/checker/schema"
)

// processCell runs the full per-cell pipeline: strict parse, one repair
// attempt, and schema validation when the cell parsed and a schema
// governs the column. Every failure is captured in the result; nothing
// escapes this boundary.
func processCell(sheet string, row, col int, raw string, schemas *schema.Set) models.CellResult {
	res := models.CellResult{Sheet: sheet, Row: row, Col: col, Raw: raw}

	if strings.TrimSpace(raw) == "" {
		res.Status = models.StatusEmpty
		return res
	}

	var doc any
	err := json.Unmarshal([]byte(raw), &doc)
	if err == nil {
		res.Status = models.StatusValid
		applySchema(&res, raw, schemas)
		return res
	}
	res.Err = err.Error()
	res.ErrType = classifyParseError(err)

	res.Fixed = repair.Fix(raw)
	if err := json.Unmarshal([]byte(res.Fixed), &doc); err != nil {
		res.Status = models.StatusInvalid
		res.FixErr = err.Error()
		return res
	}

	res.Status = models.StatusFixed
	applySchema(&res, res.Fixed, schemas)
	return res
}

// applySchema validates the parsed text against the column's schema, if
// any. A validator failure is recorded as a failed outcome rather than
// propagated.
func applySchema(res *models.CellResult, text string, schemas *schema.Set) {
	doc := schemas.ForColumn(res.Col)
	if doc == nil {
		return
	}
	outcome, err := doc.Validate(text)
	if err != nil {
		outcome = &models.SchemaOutcome{
			Passed: false,
			Errors: []models.SchemaError{{Field: "(root)", Description: err.Error()}},
		}
	}
	res.Schema = outcome
}

var quotedCharRe = regexp.MustCompile(`'[^']*'`)

// classifyParseError collapses a parse error message into a coarse class
// so the summary can group identical failure shapes. encoding/json
// embeds the offending character in single quotes; masking it turns
// "invalid character '}' ..." and "invalid character ',' ..." into one
// bucket.
func classifyParseError(err error) string {
	return quotedCharRe.ReplaceAllString(err.Error(), "'?'")
}
