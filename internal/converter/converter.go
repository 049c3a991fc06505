// =============================================================================
// JSON to CSV Converter - Converter Module
// =============================================================================
//
// This module converts a single input file. It runs the whole pipeline for
// that file and reports the outcome as a Result instead of returning an
// error, so that one broken file never stops the batch.
//
// CONVERSION PIPELINE:
//   1. Derive the output path in the destination directory
//   2. Read the input file and decode it to UTF-8      (ReadError)
//   3. Parse the JSON document                          (ParseError)
//   4. Infer the table and render it as CSV             (MalformedDocumentError)
//   5. Write the CSV file                               (WriteError)
//
// CONCURRENCY:
//   A Converter holds no per-file state and can be shared by several
//   goroutines. See batch.go.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/document"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/tabular"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Stage names the pipeline step a file failed in.
type Stage string

const (
	StageNone      Stage = ""
	StageRead      Stage = "read"
	StageParse     Stage = "parse"
	StageConvert   Stage = "convert"
	StageWrite     Stage = "write"
	StageCancelled Stage = "cancelled"
)

// Result represents the outcome of converting a single file.
type Result struct {
	// File is the input file name.
	File types.SourceFile

	// OutputFile is the path of the CSV file. It is set even when the
	// conversion failed or was a dry run.
	OutputFile string

	// Success indicates whether the file was converted (and written,
	// unless this was a dry run).
	Success bool

	// Error contains the typed per-file error if the conversion failed.
	Error error

	// Stage is the step that failed, StageNone on success.
	Stage Stage

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about one conversion.
type ProcessingStats struct {
	// Rows is the number of data rows written.
	Rows int

	// Columns is the number of columns in the header.
	Columns int

	// Bytes is the size of the CSV output.
	Bytes int

	// ProcessingTime is the time taken to convert the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options controls how files are converted.
type Options struct {
	// InputEncoding is the encoding of the input files, see
	// document.Transcode. Empty means UTF-8.
	InputEncoding string

	// DryRun converts without writing the output file.
	DryRun bool
}

// Converter converts files from one source directory to one destination.
type Converter struct {
	files  *utils.FileManager
	opts   Options
	logger *slog.Logger
}

// New creates a new Converter.
func New(files *utils.FileManager, opts Options, logger *slog.Logger) *Converter {
	return &Converter{
		files:  files,
		opts:   opts,
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run converts one file and never panics on bad input.
func (c *Converter) Run(file types.SourceFile) Result {
	startTime := time.Now()
	log := c.logger.With("file", file.Name())

	result := Result{
		File:       file,
		OutputFile: c.files.OutputPath(file),
	}
	fail := func(stage Stage, err error) Result {
		result.Stage = stage
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		log.Debug("conversion failed", "stage", string(stage), "error", err)
		return result
	}

	// =========================================================================
	// STEP 1: READ AND DECODE
	// =========================================================================

	raw, err := c.files.ReadSource(file)
	if err != nil {
		return fail(StageRead, &types.ReadError{File: file.Name(), Err: err})
	}

	text, err := document.Transcode(raw, c.opts.InputEncoding)
	if err != nil {
		return fail(StageRead, &types.ReadError{File: file.Name(), Err: err})
	}
	log.Debug("read input", "bytes", len(raw))

	// =========================================================================
	// STEP 2: PARSE JSON
	// =========================================================================

	doc, err := document.Parse(text)
	if err != nil {
		return fail(StageParse, &types.ParseError{File: file.Name(), Err: err})
	}
	log.Debug("parsed document", "kind", doc.Kind().String(), "len", doc.Len())

	// =========================================================================
	// STEP 3: CONVERT TO CSV
	// =========================================================================

	csvData, table, err := tabular.Render(doc)
	if err != nil {
		var malformed *types.MalformedDocumentError
		if errors.As(err, &malformed) {
			malformed.File = file.Name()
			return fail(StageConvert, malformed)
		}
		return fail(StageConvert, &types.MalformedDocumentError{File: file.Name(), Reason: err.Error()})
	}

	result.Stats.Rows = len(table.Rows)
	result.Stats.Columns = len(table.Columns)
	result.Stats.Bytes = len(csvData)

	// =========================================================================
	// STEP 4: WRITE OUTPUT
	// =========================================================================

	if c.opts.DryRun {
		log.Debug("dry run, output not written", "output", result.OutputFile)
	} else if err := c.files.WriteOutput(result.OutputFile, csvData); err != nil {
		return fail(StageWrite, &types.WriteError{File: file.Name(), Path: result.OutputFile, Err: err})
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	log.Debug("converted file",
		"output", result.OutputFile,
		"rows", result.Stats.Rows,
		"columns", result.Stats.Columns,
		"duration", result.Stats.ProcessingTime,
	)

	return result
}

// Describe returns the console line for a result.
func (r Result) Describe(dryRun bool) string {
	switch {
	case r.Success && dryRun:
		return "Would write file: " + r.OutputFile
	case r.Success:
		return "Wrote file: " + r.OutputFile
	default:
		return fmt.Sprintf("Error converting %s: %v", r.File.Name(), r.Error)
	}
}
