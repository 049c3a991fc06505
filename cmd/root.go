// =============================================================================
// JSON to CSV Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself runs the conversion; the only subcommand is 'version'.
//
// COBRA CLI STRUCTURE:
//   rootCmd (converter --src <path> --dst <path> [--exclude a.json,b.json])
//   └── versionCmd (converter version)
//
// EXIT CODES:
//   0 : finished (even if some files failed), or no arguments (usage shown)
//   1 : --src or --dst missing, bad configuration, source directory unreadable
//   2 : --fail-on-error was set and at least one file failed
//
// =============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/cli"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// =============================================================================
// EXIT ERROR
// =============================================================================

// ExitError carries the process exit code out of a command. Err, when set,
// is printed by Execute; a nil Err means the message was already shown.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootOptions holds the flags that are not part of the conversion request.
type rootOptions struct {
	configFile  string
	verbose     bool
	logFormat   string
	concurrency int
	dryRun      bool
	reportFile  string
	failOnError bool
}

// NewRootCmd builds the root command with all flags and subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "converter --src <path> --dst <path> [--exclude file1,file2,...]",
		Short: "JSON to CSV Converter - Convert a directory of JSON documents to CSV files",
		Long: `JSON to CSV Converter reads every JSON file in the source directory and
writes one CSV file per input into the destination directory.

  - An array of objects becomes one row per object; the header is the union
    of all keys in the order they first appear.
  - A single object becomes a one-row table.
  - Nested objects and arrays are written as JSON text.

Each file is converted independently: a file that cannot be read, parsed,
converted or written is reported and the batch carries on.

Example Usage:
  converter --src ./json --dst ./csv
  converter --src ./json --dst ./csv --exclude "settings.json, schema.json"
  converter --src ./json --dst ./csv --report summary.xlsx --fail-on-error`,

		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	// ==========================================================================
	// CONVERSION FLAGS
	// ==========================================================================

	cli.RegisterFlags(rootCmd.Flags())

	// ==========================================================================
	// RUN FLAGS
	// ==========================================================================

	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "Path to an optional YAML configuration file")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "Log output format: 'text' or 'json'")
	rootCmd.Flags().IntVar(&opts.concurrency, "concurrency", 1, "Number of files converted at the same time")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Convert without writing output files")
	rootCmd.Flags().StringVar(&opts.reportFile, "report", "", "Write a run summary to this file (.xlsx or text)")
	rootCmd.Flags().BoolVar(&opts.failOnError, "fail-on-error", false, "Exit with status 2 if any file failed")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI with the process arguments and exits. This is called
// by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, NewRootCmd(), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes root with args and maps the outcome to an exit code.
func run(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}

	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	return 1
}

// =============================================================================
// ROOT RUN FUNCTION
// =============================================================================

// runRoot resolves the arguments, loads the configuration and starts the batch.
func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	stderr := cmd.ErrOrStderr()

	req, err := cli.Resolve(cmd.Flags())
	if errors.Is(err, cli.ErrUsageRequested) {
		fmt.Fprint(stderr, cmd.UsageString())
		return nil
	}
	var invalid *cli.InvalidArgumentsError
	if errors.As(err, &invalid) {
		printMissingArguments(stderr, invalid)
		return &ExitError{Code: 1}
	}
	if err != nil {
		return err
	}

	cfg, err := config.LoadMainConfig(opts.configFile)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd.Flags(), cfg, opts); err != nil {
		return err
	}

	return runProcess(cmd.Context(), req, cfg, cmd.OutOrStdout(), stderr)
}

// printMissingArguments tells the user which directory flags to add.
func printMissingArguments(w io.Writer, err *cli.InvalidArgumentsError) {
	fmt.Fprintln(w, "Please supply both source and destination directories")
	for _, name := range err.Missing {
		switch name {
		case cli.FlagSource:
			fmt.Fprintln(w, "Source: --src <path>")
		case cli.FlagDest:
			fmt.Fprintln(w, "Destination: --dst <path>")
		}
	}
}

// applyFlagOverrides copies explicitly set flags over the configuration and
// validates the result.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.MainConfig, opts *rootOptions) error {
	if flags.Changed("verbose") && opts.verbose {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("concurrency") {
		cfg.MaxConcurrency = opts.concurrency
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if flags.Changed("report") {
		cfg.ReportFile = opts.reportFile
	}
	if flags.Changed("fail-on-error") {
		cfg.FailOnError = opts.failOnError
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
