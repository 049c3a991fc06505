// =============================================================================
// JSON to CSV Converter - Argument Resolver
// =============================================================================
//
// This module turns the parsed command line into a ConversionRequest. It never
// prints and never exits; it returns one of three outcomes and lets the
// caller decide what the user sees and which exit code is used:
//
//   request, nil                    : run the batch
//   nil, ErrUsageRequested          : nothing was supplied, show usage (exit 0)
//   nil, *InvalidArgumentsError     : --src or --dst is missing (exit 1)
//
// =============================================================================

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"github.com/spf13/pflag"
)

// Flag names understood by the resolver.
const (
	FlagSource  = "src"
	FlagDest    = "dst"
	FlagExclude = "exclude"
)

// ErrUsageRequested is returned when no option was supplied at all.
var ErrUsageRequested = errors.New("usage requested")

// InvalidArgumentsError is returned when a required option is missing.
type InvalidArgumentsError struct {
	// Missing lists the flag names that were absent or blank.
	Missing []string
}

func (e *InvalidArgumentsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = "--" + m
	}
	return fmt.Sprintf("please supply both source and destination directories (missing %s)", strings.Join(names, ", "))
}

// RegisterFlags adds the resolver's flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagSource, "", "Source directory containing the JSON files (required)")
	fs.String(FlagDest, "", "Destination directory for the CSV files, must exist (required)")
	fs.String(FlagExclude, "", "Comma-separated list of file names to skip")
}

// Resolve builds a ConversionRequest from a parsed flag set.
//
// Any flag that was set counts as an attempt to run; only a completely bare
// command line is treated as a request for usage.
func Resolve(fs *pflag.FlagSet) (*types.ConversionRequest, error) {
	if fs.NFlag() == 0 {
		return nil, ErrUsageRequested
	}

	src := lookup(fs, FlagSource)
	dst := lookup(fs, FlagDest)

	var missing []string
	if src == "" {
		missing = append(missing, FlagSource)
	}
	if dst == "" {
		missing = append(missing, FlagDest)
	}
	if len(missing) > 0 {
		return nil, &InvalidArgumentsError{Missing: missing}
	}

	return &types.ConversionRequest{
		SourceDir:  src,
		DestDir:    dst,
		Exclusions: types.ParseExclusionList(lookup(fs, FlagExclude)),
	}, nil
}

// lookup returns the trimmed value of a string flag, or "" if the flag is
// not registered.
func lookup(fs *pflag.FlagSet, name string) string {
	f := fs.Lookup(name)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Value.String())
}
