// =============================================================================
// JSON to CSV Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   converter --src <path> --dst <path> [--exclude file1,file2,...]
//   converter version
//
// ARCHITECTURE:
//   - cmd/                : Cobra command definitions and exit codes
//   - internal/cli        : turns flags into a ConversionRequest
//   - internal/config     : optional YAML configuration
//   - internal/document   : JSON parsing into an ordered value tree
//   - internal/tabular    : table inference and CSV rendering
//   - internal/converter  : per-file pipeline and batch runner
//   - internal/report     : run summary (text or XLSX)
//   - pkg/utils           : directory scanning and file writing
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/JSON-to-CSV-conversion/cmd"
)

func main() {
	cmd.Execute()
}
