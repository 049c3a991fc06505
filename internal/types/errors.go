// =============================================================================
// JSON to CSV Converter - Error Taxonomy
// =============================================================================
//
// FATAL ERRORS (abort the run before or during discovery):
//   - DirectoryAccessError : the source directory cannot be listed
//   - ConfigError          : the configuration file cannot be loaded
//
// PER-FILE ERRORS (recovered by the file pipeline, the batch continues):
//   - ReadError              : the input file cannot be read or decoded
//   - ParseError             : the input is not valid JSON
//   - MalformedDocumentError : valid JSON that has no tabular shape
//   - WriteError             : the CSV output cannot be written
//
// Argument errors live in the cli package next to the resolver.
//
// All types wrap their cause and work with errors.Is / errors.As.
//
// =============================================================================

package types

import "fmt"

// =============================================================================
// FATAL ERRORS
// =============================================================================

// DirectoryAccessError is returned when the source directory cannot be listed.
type DirectoryAccessError struct {
	Dir string
	Err error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("cannot read source directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// ConfigError is returned when the configuration file is unreadable or invalid.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// =============================================================================
// PER-FILE ERRORS
// =============================================================================

// ReadError is returned when an input file cannot be read or decoded.
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is returned when an input file is not valid JSON.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedDocumentError is returned when a parsed document cannot be laid
// out as a table. File is empty when raised by the converter itself and is
// filled in by the converter.
type MalformedDocumentError struct {
	File   string
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	if e.File == "" {
		return "malformed document: " + e.Reason
	}
	return fmt.Sprintf("malformed document %s: %s", e.File, e.Reason)
}

// WriteError is returned when the CSV output cannot be written.
type WriteError struct {
	File string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
