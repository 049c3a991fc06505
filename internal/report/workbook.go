// =============================================================================
// JSON to CSV Converter - Summary Workbook
// =============================================================================
//
// WORKBOOK LAYOUT:
//   Summary : one label/value pair per row (run ID, times, counts)
//   Files   : one row per input file with status, stage and error
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	filesSheet   = "Files"
)

// filesHeader is the header row of the Files sheet.
var filesHeader = []any{"Input", "Output", "Status", "Stage", "Error", "Rows", "Columns", "Duration (ms)"}

// WriteWorkbook writes the summary as an XLSX workbook.
func WriteWorkbook(path string, s *Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it instead of leaving it empty.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summaryRows := [][]any{
		{"Run ID", s.RunID},
		{"Source", s.SourceDir},
		{"Destination", s.DestDir},
		{"Start Time", s.StartTime.Format("2006-01-02 15:04:05")},
		{"End Time", s.EndTime.Format("2006-01-02 15:04:05")},
		{"Duration", s.Duration().String()},
		{"Dry Run", s.DryRun},
		{"Total Files", s.TotalFiles},
		{"Successful", s.SuccessfulFiles},
		{"Failed", s.FailedFiles},
		{"Total Rows", s.TotalRows},
	}
	for i, row := range summaryRows {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(filesSheet); err != nil {
		return fmt.Errorf("failed to create files sheet: %w", err)
	}
	if err := setRow(f, filesSheet, 1, filesHeader); err != nil {
		return err
	}

	for i, r := range s.Results {
		status, errText := "ok", ""
		if !r.Success {
			status = "failed"
			errText = r.Error.Error()
		}
		row := []any{
			r.File.Name(),
			r.OutputFile,
			status,
			string(r.Stage),
			errText,
			r.Stats.Rows,
			r.Stats.Columns,
			r.Stats.ProcessingTime.Milliseconds(),
		}
		if err := setRow(f, filesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save summary workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
