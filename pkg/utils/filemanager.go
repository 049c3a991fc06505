// =============================================================================
// JSON to CSV Converter - File Manager Utility
// =============================================================================
//
// This module provides the file plumbing around the conversion:
//   - Source directory scanning with the exclusion list
//   - Output file naming
//   - Reading input files
//   - Writing output files without leaving partial files behind
//
// OUTPUT NAMING:
//   The first occurrence of the input extension in the file name is replaced
//   by the output extension and the result is placed in the destination
//   directory:
//     orders.json       -> <dst>/orders.csv
//     orders.json.bak   -> <dst>/orders.csv.bak  (name only *contains* .json)
//
// WRITING:
//   Output is written to a hidden temporary file in the destination directory
//   and renamed into place. The destination directory is never created.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for one batch run.
type FileManager struct {
	// SourceDir is the directory scanned for input files.
	SourceDir string

	// DestDir is the directory output files are written to.
	DestDir string

	// InputExtension is the marker an input file name must contain.
	InputExtension string

	// OutputExtension replaces InputExtension in output names.
	OutputExtension string
}

// NewFileManager creates a FileManager for the request.
func NewFileManager(req *types.ConversionRequest, inputExt, outputExt string) *FileManager {
	return &FileManager{
		SourceDir:       req.SourceDir,
		DestDir:         req.DestDir,
		InputExtension:  inputExt,
		OutputExtension: outputExt,
	}
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles lists the source directory and returns the files to
// convert.
//
// PARAMETERS:
//   - exclusions: File names to skip. Matching is exact after trimming.
//
// RETURNS:
//   - The file names in directory listing order.
//   - A *types.DirectoryAccessError if the directory cannot be read.
//
// Directories are skipped and subdirectories are not scanned.
func (fm *FileManager) DiscoverInputFiles(exclusions types.ExclusionSet) ([]types.SourceFile, error) {
	entries, err := os.ReadDir(fm.SourceDir)
	if err != nil {
		return nil, &types.DirectoryAccessError{Dir: fm.SourceDir, Err: err}
	}

	files := make([]types.SourceFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			continue
		}
		if exclusions.Contains(name) {
			continue
		}
		if !strings.Contains(name, fm.InputExtension) {
			continue
		}

		files = append(files, types.SourceFile(name))
	}

	return files, nil
}

// =============================================================================
// PATHS
// =============================================================================

// SourcePath returns the full path of an input file.
func (fm *FileManager) SourcePath(file types.SourceFile) string {
	return filepath.Join(fm.SourceDir, file.Name())
}

// OutputPath returns the destination path for an input file.
func (fm *FileManager) OutputPath(file types.SourceFile) string {
	name := file.Name()
	if strings.Contains(name, fm.InputExtension) {
		name = strings.Replace(name, fm.InputExtension, fm.OutputExtension, 1)
	} else {
		name += fm.OutputExtension
	}
	return filepath.Join(fm.DestDir, name)
}

// =============================================================================
// READING AND WRITING
// =============================================================================

// ReadSource returns the raw content of an input file.
func (fm *FileManager) ReadSource(file types.SourceFile) ([]byte, error) {
	return os.ReadFile(fm.SourcePath(file))
}

// WriteOutput writes data to outputPath through a temporary file in the same
// directory, replacing any existing file.
//
// RETURNS:
//   - An error if the temporary file cannot be written or renamed. The
//     temporary file is removed on failure.
func (fm *FileManager) WriteOutput(outputPath string, data []byte) error {
	dir := filepath.Dir(outputPath)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(outputPath), uuid.NewString()))

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
