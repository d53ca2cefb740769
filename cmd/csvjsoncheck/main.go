// Package main provides the CLI entry point for csvjsoncheck.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"csvjsoncheck/pkg/checker"
	"csvjsoncheck/pkg/checker/report"
	"csvjsoncheck/pkg/checker/schema"
)

const sampleSchemaFile = "sample_schema.json"

var (
	schemaPath    string
	columnSchemas []string
	summaryOnly   bool
	noHeader      bool
	createSample  bool
	outputPath    string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csvjsoncheck [input.csv]",
		Short: "Check and fix JSON payloads in CSV cells",
		Long: `csvjsoncheck scans CSV (or xlsx) files whose cells contain JSON,
repairs common formatting mistakes, optionally validates parsed cells
against a JSON Schema, and writes a fixed copy when anything was repaired.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema file applied to every column")
	rootCmd.Flags().StringArrayVar(&columnSchemas, "column-schema", nil,
		"per-column schema as <col_index>=<path> (repeatable, 0-based)")
	rootCmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "show only summary statistics")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "treat the first row as data")
	rootCmd.Flags().BoolVar(&createSample, "create-sample-schema", false,
		"write a sample schema to "+sampleSchemaFile+" and exit")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "fixed-file destination (default: <input>_fixed.<ext>)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	if createSample {
		if err := schema.WriteSample(sampleSchemaFile); err != nil {
			return fmt.Errorf("create sample schema: %w", err)
		}
		fmt.Println("Created sample schema file:", sampleSchemaFile)
		if len(args) == 0 {
			return nil
		}
	}
	if len(args) == 0 {
		return cmd.Help()
	}

	schemas, err := loadSchemas(logger)
	if err != nil {
		return err
	}

	opts := checker.DefaultOptions()
	opts.Schemas = schemas
	opts.NoHeader = noHeader
	opts.SummaryOnly = summaryOnly
	opts.OutputPath = outputPath
	opts.Logger = logger

	result, err := checker.Check(args[0], opts)
	if err != nil {
		return err
	}

	return report.New(os.Stdout, opts).Run(result)
}

// loadSchemas compiles the global and per-column schema files. Any
// missing or malformed schema is a fatal configuration error.
func loadSchemas(logger zerolog.Logger) (*schema.Set, error) {
	set := schema.NewSet()

	if schemaPath != "" {
		doc, err := schema.LoadFile(schemaPath)
		if err != nil {
			return nil, err
		}
		set.Default = doc
		logger.Debug().Str("path", schemaPath).Msg("loaded global schema")
	}

	for _, spec := range columnSchemas {
		idx, path, err := parseColumnSchema(spec)
		if err != nil {
			return nil, err
		}
		doc, err := schema.LoadFile(path)
		if err != nil {
			return nil, err
		}
		set.ByColumn[idx] = doc
		logger.Debug().Int("column", idx).Str("path", path).Msg("loaded column schema")
	}

	if set.Empty() {
		return nil, nil
	}
	return set, nil
}

func parseColumnSchema(spec string) (int, string, error) {
	colPart, path, ok := strings.Cut(spec, "=")
	if !ok || path == "" {
		return 0, "", fmt.Errorf("invalid --column-schema %q, expected <col_index>=<path>", spec)
	}
	idx, err := strconv.Atoi(colPart)
	if err != nil || idx < 0 {
		return 0, "", fmt.Errorf("invalid column index in --column-schema %q", spec)
	}
	return idx, path, nil
}
