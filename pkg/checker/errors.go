package checker

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ScanError represents a fatal error while reading or writing a file.
// JSON content errors never surface here; those live in cell results.
type ScanError struct {
	Path  string
	Stage string // "csv", "workbook", "write"
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
