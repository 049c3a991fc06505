// =============================================================================
// JSON to CSV Converter - Run Summary
// =============================================================================
//
// This module collects the per-file results of a batch and writes them to a
// summary file at the end of the run.
//
// FORMATS (chosen by the report path's extension):
//   .xlsx      : workbook with a "Summary" sheet and a "Files" sheet
//   otherwise  : plain text
//
// A failed report never changes the outcome of the batch; the caller logs
// the error and moves on.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/converter"
	"github.com/google/uuid"
)

// =============================================================================
// SUMMARY STRUCTURE
// =============================================================================

// Summary describes one batch run.
type Summary struct {
	RunID           string
	SourceDir       string
	DestDir         string
	StartTime       time.Time
	EndTime         time.Time
	DryRun          bool
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	TotalRows       int
	Results         []converter.Result
}

// NewSummary starts a summary for a run beginning now.
func NewSummary(sourceDir, destDir string, dryRun bool) *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		SourceDir: sourceDir,
		DestDir:   destDir,
		StartTime: time.Now(),
		DryRun:    dryRun,
	}
}

// Add records the outcome of one file.
func (s *Summary) Add(r converter.Result) {
	s.Results = append(s.Results, r)
	s.TotalFiles++
	if r.Success {
		s.SuccessfulFiles++
		s.TotalRows += r.Stats.Rows
	} else {
		s.FailedFiles++
	}
}

// Finish stamps the end time.
func (s *Summary) Finish() {
	s.EndTime = time.Now()
}

// Duration returns how long the run took.
func (s *Summary) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// HasFailures reports whether any file failed.
func (s *Summary) HasFailures() bool {
	return s.FailedFiles > 0
}

// =============================================================================
// WRITERS
// =============================================================================

// Write saves the summary to path, choosing the format from the extension.
func Write(path string, s *Summary) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteWorkbook(path, s)
	}
	return WriteText(path, s)
}

// WriteText writes a plain text summary.
func WriteText(path string, s *Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "JSON to CSV Converter - Processing Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Source:         %s\n"+
		"  Destination:    %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n"+
		"  Dry Run:        %t\n\n"+
		"Statistics:\n"+
		"  Total Files:    %d\n"+
		"  Successful:     %d\n"+
		"  Failed:         %d\n"+
		"  Total Rows:     %d\n\n",
		s.RunID,
		s.SourceDir,
		s.DestDir,
		s.StartTime.Format("2006-01-02 15:04:05"),
		s.EndTime.Format("2006-01-02 15:04:05"),
		s.Duration(),
		s.DryRun,
		s.TotalFiles,
		s.SuccessfulFiles,
		s.FailedFiles,
		s.TotalRows)

	var ok, failed []converter.Result
	for _, r := range s.Results {
		if r.Success {
			ok = append(ok, r)
		} else {
			failed = append(failed, r)
		}
	}

	if len(ok) > 0 {
		writer.WriteString("Successful Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, r := range ok {
			fmt.Fprintf(writer, "  Input:        %s\n", r.File.Name())
			fmt.Fprintf(writer, "  Output:       %s\n", r.OutputFile)
			fmt.Fprintf(writer, "  Rows:         %d\n", r.Stats.Rows)
			fmt.Fprintf(writer, "  Columns:      %d\n", r.Stats.Columns)
			fmt.Fprintf(writer, "  Process Time: %s\n\n", r.Stats.ProcessingTime)
		}
	}

	if len(failed) > 0 {
		writer.WriteString("Failed Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, r := range failed {
			fmt.Fprintf(writer, "  File:  %s\n", r.File.Name())
			fmt.Fprintf(writer, "  Stage: %s\n", r.Stage)
			fmt.Fprintf(writer, "  Error: %v\n\n", r.Error)
		}
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary file: %w", err)
	}
	return file.Close()
}
