// Package checker walks tabular files and checks every cell for a
// parseable, schema-conforming JSON payload.
package checker

import (
	"github.com/rs/zerolog"

	"csvjsoncheck/pkg/checker/schema"
)

// Options configures a scan and the reporting that follows it. CLI flags
// are translated into this struct once; nothing reads flags downstream.
type Options struct {
	// Schemas holds the default and per-column JSON Schemas. May be nil,
	// in which case no validation occurs.
	Schemas *schema.Set
	// NoHeader treats the first row as data instead of passing it through.
	NoHeader bool
	// SummaryOnly suppresses the per-cell listing in the report.
	SummaryOnly bool
	// OutputPath overrides the derived destination for the fixed file.
	OutputPath string
	// Logger receives debug diagnostics. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
