// =============================================================================
// JSON to CSV Converter - Request Validation
// =============================================================================
//
// This module checks a ConversionRequest before any file is touched. It
// collects every issue instead of stopping at the first one, so the user sees
// all problems with the command line at once.
//
// SEVERITY:
//   - "error"   : the batch cannot run (the source directory is unusable)
//   - "warning" : the batch runs, but the result is probably not what the
//                 user wanted (missing destination, exclusions that can
//                 never match)
//
// The destination directory is never created. A missing destination is only
// a warning: every file will then fail at the write step and be reported
// individually.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ISSUE
// =============================================================================

// Issue is a single finding about a request.
type Issue struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Field is the option the issue is about ("src", "dst", "exclude").
	Field string

	// Value is the offending value.
	Value string

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (i *Issue) Error() string {
	return fmt.Sprintf("[%s] --%s %q: %s", strings.ToUpper(i.Severity), i.Field, i.Value, i.Message)
}

func (i *Issue) Unwrap() error { return i.Err }

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result contains all issues found for a request.
type Result struct {
	// IsValid is true if there are no errors.
	IsValid bool

	// Issues contains errors and warnings in the order they were found.
	Issues []*Issue

	// ErrorCount is the number of errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int
}

// Errors returns only the issues with SeverityError.
func (r *Result) Errors() []*Issue {
	return r.filter(SeverityError)
}

// Warnings returns only the issues with SeverityWarning.
func (r *Result) Warnings() []*Issue {
	return r.filter(SeverityWarning)
}

// Err returns the first error as a typed error, or nil if the request is
// usable.
func (r *Result) Err() error {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			if issue.Err != nil {
				return issue.Err
			}
			return issue
		}
	}
	return nil
}

func (r *Result) filter(severity string) []*Issue {
	var out []*Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func (r *Result) add(issue *Issue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == SeverityError {
		r.ErrorCount++
		r.IsValid = false
	} else {
		r.WarningCount++
	}
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Options controls which checks are run.
type Options struct {
	// InputExtension is the marker a file name must contain to be selected.
	InputExtension string

	// DryRun skips the destination checks, nothing is written.
	DryRun bool
}

// ValidateRequest checks a request and returns every issue found.
//
// PARAMETERS:
//   - req: The resolved command line.
//   - opts: Settings that affect what counts as a problem.
//
// RETURNS:
//   - A Result; Result.Err() is non-nil when the batch cannot run.
func ValidateRequest(req *types.ConversionRequest, opts Options) *Result {
	result := &Result{IsValid: true}

	// =========================================================================
	// SOURCE DIRECTORY
	// =========================================================================

	if issue := checkDirectory("src", req.SourceDir); issue != nil {
		issue.Severity = SeverityError
		issue.Err = &types.DirectoryAccessError{Dir: req.SourceDir, Err: issue.Err}
		result.add(issue)
	}

	// =========================================================================
	// DESTINATION DIRECTORY
	// =========================================================================

	if !opts.DryRun {
		if issue := checkDirectory("dst", req.DestDir); issue != nil {
			issue.Severity = SeverityWarning
			issue.Message += ", no output can be written"
			result.add(issue)
		}
	}

	// =========================================================================
	// EXCLUSIONS
	// =========================================================================
	// Exclusions are compared with bare file names, so a path never matches.

	for _, name := range req.Exclusions.Names() {
		switch {
		case strings.ContainsAny(name, `/\`):
			result.add(&Issue{
				Severity: SeverityWarning,
				Field:    "exclude",
				Value:    name,
				Message:  fmt.Sprintf("exclusions match file names only, did you mean %q?", filepath.Base(name)),
			})
		case opts.InputExtension != "" && !strings.Contains(name, opts.InputExtension):
			result.add(&Issue{
				Severity: SeverityWarning,
				Field:    "exclude",
				Value:    name,
				Message:  fmt.Sprintf("file is never selected, it does not contain %q", opts.InputExtension),
			})
		}
	}

	return result
}

var errNotDirectory = errors.New("not a directory")

// checkDirectory returns an issue if dir is not an accessible directory.
// The caller sets the severity.
func checkDirectory(field, dir string) *Issue {
	info, err := os.Stat(dir)
	if err != nil {
		return &Issue{
			Field:   field,
			Value:   dir,
			Message: "directory is not accessible",
			Err:     err,
		}
	}
	if !info.IsDir() {
		return &Issue{
			Field:   field,
			Value:   dir,
			Message: "not a directory",
			Err:     errNotDirectory,
		}
	}
	return nil
}
