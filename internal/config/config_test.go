package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "converter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMainConfig_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadMainConfig("")

	require.NoError(t, err)
	require.Equal(t, ".json", cfg.InputExtension)
	require.Equal(t, ".csv", cfg.OutputExtension)
	require.Equal(t, "utf-8", cfg.InputEncoding)
	require.Equal(t, 1, cfg.MaxConcurrency)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.False(t, cfg.FailOnError)
	require.Empty(t, cfg.ReportFile)
}

func TestLoadMainConfig_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
input_extension: ".ndjson"
output_extension: ".tsv.csv"
input_encoding: "Latin1"
max_concurrency: 4
log_level: "DEBUG"
log_format: "json"
fail_on_error: true
report_file: "summary.xlsx"
`)

	cfg, err := LoadMainConfig(path)

	require.NoError(t, err)
	require.Equal(t, ".ndjson", cfg.InputExtension)
	require.Equal(t, ".tsv.csv", cfg.OutputExtension)
	require.Equal(t, "iso-8859-1", cfg.InputEncoding)
	require.Equal(t, 4, cfg.MaxConcurrency)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.FailOnError)
	require.Equal(t, "summary.xlsx", cfg.ReportFile)
}

func TestLoadMainConfig_EmptyFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadMainConfig(writeConfig(t, ""))

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMainConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":      "input_dir: ./in\n",
		"bad yaml":         "max_concurrency: [\n",
		"same extensions":  "input_extension: .x\noutput_extension: .x\n",
		"negative workers": "max_concurrency: -2\n",
		"bad level":        "log_level: loud\n",
		"bad format":       "log_format: xml\n",
		"bad encoding":     "input_encoding: ebcdic\n",
		"separator in ext": "output_extension: /csv\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadMainConfig(writeConfig(t, body))
			require.Error(t, err)
			var cfgErr *types.ConfigError
			require.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestLoadMainConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadMainConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
