// =============================================================================
// JSON to CSV Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - cli        (builds the ConversionRequest)
//   - validation (checks the request before the run)
//   - utils      (scans the source directory)
//   - tabular    (raises MalformedDocumentError)
//   - converter  (reports per-file errors)
//
// =============================================================================

package types

import (
	"sort"
	"strings"
)

// =============================================================================
// CONVERSION REQUEST
// =============================================================================

// ConversionRequest describes one batch run. It is created once from the
// command line and is never mutated afterwards.
type ConversionRequest struct {
	// SourceDir is the directory containing the JSON input files.
	SourceDir string

	// DestDir is the directory the CSV files are written to.
	// It must already exist; the converter never creates it.
	DestDir string

	// Exclusions holds the file names to skip, trimmed of surrounding
	// whitespace. A nil set excludes nothing.
	Exclusions ExclusionSet
}

// ExclusionSet is a set of file names matched exactly after trimming.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from raw names. Surrounding whitespace is
// trimmed and empty names are dropped.
func NewExclusionSet(names ...string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// ParseExclusionList splits a comma-separated list such as
// "a.json, b.json" into an ExclusionSet.
func ParseExclusionList(list string) ExclusionSet {
	if strings.TrimSpace(list) == "" {
		return NewExclusionSet()
	}
	return NewExclusionSet(strings.Split(list, ",")...)
}

// Contains reports whether name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.TrimSpace(name)]
	return ok
}

// Names returns the excluded names in sorted order, mostly for logging.
func (s ExclusionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// SOURCE FILE
// =============================================================================

// SourceFile is the bare name of an input file inside the source directory.
type SourceFile string

// Name returns the file name as a plain string.
func (f SourceFile) Name() string {
	return string(f)
}
