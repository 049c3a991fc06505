// =============================================================================
// JSON to CSV Converter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the converter runs without any file at all; a file only needs
// to list the settings it changes.
//
// EXAMPLE (converter.yaml):
//   input_extension: ".json"
//   output_extension: ".csv"
//   input_encoding: "utf-8"
//   max_concurrency: 4
//   log_level: "debug"
//   log_format: "json"
//   fail_on_error: true
//   report_file: "./reports/summary.xlsx"
//
// PRECEDENCE:
//   defaults < configuration file < command line flags
//
// =============================================================================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/document"
	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the settings for a batch run.
type MainConfig struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputExtension is the marker a file name must contain to be converted.
	// It is also the part of the name replaced by OutputExtension.
	// Default: ".json"
	InputExtension string `yaml:"input_extension"`

	// OutputExtension replaces InputExtension in the output file name.
	// Default: ".csv"
	OutputExtension string `yaml:"output_extension"`

	// InputEncoding is the character encoding of the input files.
	// Valid values: "utf-8", "utf-16", "utf-16le", "utf-16be",
	// "iso-8859-1", "windows-1252". A byte order mark always wins.
	// Default: "utf-8"
	InputEncoding string `yaml:"input_encoding"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the number of files converted at the same time.
	// Default: 1 (sequential)
	MaxConcurrency int `yaml:"max_concurrency"`

	// FailOnError makes the run exit with a non-zero status when any file
	// failed to convert.
	// Default: false
	FailOnError bool `yaml:"fail_on_error"`

	// DryRun converts in memory without writing any output.
	// Default: false
	DryRun bool `yaml:"dry_run"`

	// =========================================================================
	// LOGGING AND REPORTING
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log handler.
	// Valid values: "text", "json"
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// ReportFile is where the run summary is written. A ".xlsx" path gets a
	// workbook, anything else a text file. Empty disables the report.
	ReportFile string `yaml:"report_file"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyMainConfigDefaults(cfg)
	return cfg
}

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. An empty path returns
//     the defaults without touching the filesystem.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - A *types.ConfigError if the file cannot be read, parsed or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	if configPath == "" {
		return Default(), nil
	}

	// Read the configuration file.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, &types.ConfigError{Path: configPath, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, &types.ConfigError{Path: configPath, Err: err}
	}
	return cfg, nil
}

// parse decodes, defaults and validates raw YAML.
func parse(data []byte) (*MainConfig, error) {
	var cfg MainConfig

	// Unknown keys are rejected so typos do not pass silently.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply default values.
	applyMainConfigDefaults(&cfg)

	// Validate the configuration.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(cfg *MainConfig) {
	if cfg.InputExtension == "" {
		cfg.InputExtension = ".json"
	}
	if cfg.OutputExtension == "" {
		cfg.OutputExtension = ".csv"
	}
	cfg.InputEncoding = document.NormalizeEncoding(cfg.InputEncoding)
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
}

// Validate checks every setting and returns the first problem found.
func (cfg *MainConfig) Validate() error {
	if cfg.InputExtension == cfg.OutputExtension {
		return fmt.Errorf("input_extension and output_extension must differ (both %q)", cfg.InputExtension)
	}
	if strings.ContainsAny(cfg.OutputExtension, `/\`) {
		return fmt.Errorf("output_extension %q must not contain a path separator", cfg.OutputExtension)
	}
	if !document.SupportedEncoding(cfg.InputEncoding) {
		return fmt.Errorf("unsupported input_encoding %q", cfg.InputEncoding)
	}
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", cfg.MaxConcurrency)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return nil
}
