package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures both streams.
func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	code = run(context.Background(), root, args)
	return code, out.String(), errOut.String()
}

// sourceDir creates a directory holding files.
func sourceDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_NoArgumentsShowsUsage(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t)

	require.Equal(t, 0, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "--src")
	require.Contains(t, stderr, "--dst")
	require.Contains(t, stderr, "--exclude")
}

func TestRun_MissingDirectories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant string
	}{
		{
			name:    "only source",
			args:    []string{"--src", "in"},
			want:    []string{"Please supply both source and destination directories", "Destination: --dst <path>"},
			notWant: "Source: --src <path>",
		},
		{
			name:    "only destination",
			args:    []string{"--dst", "out"},
			want:    []string{"Please supply both source and destination directories", "Source: --src <path>"},
			notWant: "Destination: --dst <path>",
		},
		{
			name: "only exclude",
			args: []string{"--exclude", "a.json"},
			want: []string{"Source: --src <path>", "Destination: --dst <path>"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := execute(t, tc.args...)

			require.Equal(t, 1, code)
			for _, w := range tc.want {
				require.Contains(t, stderr, w)
			}
			if tc.notWant != "" {
				require.NotContains(t, stderr, tc.notWant)
			}
		})
	}
}

func TestRun_ConvertsDirectory(t *testing.T) {
	t.Parallel()

	src := sourceDir(t, map[string]string{
		"people.json":   `[{"name":"Ann","age":30},{"name":"Bob","city":"Oslo"}]`,
		"settings.json": `{"skip":true}`,
		"broken.json":   `{"a":`,
		"notes.txt":     `not json`,
	})
	dst := t.TempDir()

	code, stdout, stderr := execute(t, "--src", src, "--dst", dst, "--exclude", " settings.json ")

	require.Equal(t, 0, code, "a failed file does not change the exit status")
	require.Contains(t, stdout, "Wrote file: "+filepath.Join(dst, "people.csv"))
	require.Contains(t, stderr, "Error converting broken.json")
	require.ElementsMatch(t, []string{"people.csv"}, listDir(t, dst))

	data, err := os.ReadFile(filepath.Join(dst, "people.csv"))
	require.NoError(t, err)
	require.Equal(t, "name,age,city\nAnn,30,\nBob,,Oslo\n", string(data))
}

func TestRun_FailOnError(t *testing.T) {
	t.Parallel()

	src := sourceDir(t, map[string]string{
		"good.json": `{"a":1}`,
		"bad.json":  `[1,2]`,
	})
	dst := t.TempDir()

	code, _, stderr := execute(t, "--src", src, "--dst", dst, "--fail-on-error")

	require.Equal(t, 2, code)
	require.Contains(t, stderr, "Error: 1 of 2 file(s) failed to convert")
	require.ElementsMatch(t, []string{"good.csv"}, listDir(t, dst))
}

func TestRun_UnreadableSource(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	code, stdout, stderr := execute(t, "--src", missing, "--dst", t.TempDir())

	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Error: cannot read source directory")
}

func TestRun_InvalidFlagValue(t *testing.T) {
	t.Parallel()

	code, _, stderr := execute(t, "--src", t.TempDir(), "--dst", t.TempDir(), "--concurrency", "0")

	require.Equal(t, 1, code)
	require.Contains(t, stderr, "max_concurrency must be at least 1")
}

func TestRun_ConfigFileAndReport(t *testing.T) {
	t.Parallel()

	src := sourceDir(t, map[string]string{
		"a.json": `[{"x":1}]`,
		"b.json": `[{"y":2}]`,
	})
	dst := t.TempDir()
	reportPath := filepath.Join(t.TempDir(), "summary.txt")

	cfgPath := filepath.Join(t.TempDir(), "converter.yaml")
	cfg := "output_extension: \".tsv\"\nmax_concurrency: 2\nlog_level: error\nreport_file: " + reportPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	code, stdout, _ := execute(t, "--src", src, "--dst", dst, "--config", cfgPath)

	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Wrote file: "+filepath.Join(dst, "a.tsv"))
	require.ElementsMatch(t, []string{"a.tsv", "b.tsv"}, listDir(t, dst))

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	require.Contains(t, string(report), "Successful:     2")
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	src := sourceDir(t, map[string]string{"a.json": `{"x":1}`})
	dst := t.TempDir()

	code, stdout, _ := execute(t, "--src", src, "--dst", dst, "--dry-run")

	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Would write file: "+filepath.Join(dst, "a.csv"))
	require.Empty(t, listDir(t, dst))
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "version")

	require.Equal(t, 0, code)
	require.Contains(t, stdout, "JSON to CSV Converter")
	require.Contains(t, stdout, "Version:    "+Version)
}
