// =============================================================================
// JSON to CSV Converter - Batch Processing
// =============================================================================
//
// PROCESSING PIPELINE:
//   1. Set up logging with a run ID and check the request
//   2. Discover JSON files in the source directory (minus exclusions)
//   3. Convert each file (sequentially, or concurrently when configured)
//   4. Print one line per file: "Wrote file: ..." or "Error converting ..."
//   5. Write the optional run summary
//
// A file failing never stops the batch. Only an unreadable source directory
// aborts the run.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/config"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/converter"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/logging"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/report"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/validation"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/pkg/utils"
)

// runProcess converts every selected file of the request.
func runProcess(ctx context.Context, req *types.ConversionRequest, cfg *config.MainConfig, stdout, stderr io.Writer) error {
	summary := report.NewSummary(req.SourceDir, req.DestDir, cfg.DryRun)
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr).With("run_id", summary.RunID)

	// =========================================================================
	// STEP 1: VALIDATE THE REQUEST
	// =========================================================================

	check := validation.ValidateRequest(req, validation.Options{
		InputExtension: cfg.InputExtension,
		DryRun:         cfg.DryRun,
	})
	for _, issue := range check.Warnings() {
		logger.Warn(issue.Message, "option", "--"+issue.Field, "value", issue.Value)
	}
	if err := check.Err(); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	fm := utils.NewFileManager(req, cfg.InputExtension, cfg.OutputExtension)

	files, err := fm.DiscoverInputFiles(req.Exclusions)
	if err != nil {
		return err
	}

	logger.Info("discovered input files",
		"src", req.SourceDir,
		"count", len(files),
		"excluded", req.Exclusions.Names(),
	)

	// =========================================================================
	// STEP 3: CONVERT
	// =========================================================================

	conv := converter.New(fm, converter.Options{
		InputEncoding: cfg.InputEncoding,
		DryRun:        cfg.DryRun,
	}, logger)

	batch := converter.NewBatch(conv, cfg.MaxConcurrency)
	batch.OnResult = func(r converter.Result) {
		summary.Add(r)
		if r.Success {
			fmt.Fprintln(stdout, r.Describe(cfg.DryRun))
		} else {
			fmt.Fprintln(stderr, r.Describe(cfg.DryRun))
		}
	}
	batch.Run(ctx, files)
	summary.Finish()

	logger.Info("batch complete",
		"total", summary.TotalFiles,
		"successful", summary.SuccessfulFiles,
		"failed", summary.FailedFiles,
		"duration", summary.Duration(),
	)

	// =========================================================================
	// STEP 4: REPORT
	// =========================================================================

	if cfg.ReportFile != "" {
		if err := report.Write(cfg.ReportFile, summary); err != nil {
			logger.Error("failed to write run summary", "path", cfg.ReportFile, "error", err)
		} else {
			logger.Info("wrote run summary", "path", cfg.ReportFile)
		}
	}

	if cfg.FailOnError && summary.HasFailures() {
		return &ExitError{
			Code: 2,
			Err:  fmt.Errorf("%d of %d file(s) failed to convert", summary.FailedFiles, summary.TotalFiles),
		}
	}
	return nil
}
