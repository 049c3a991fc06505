package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, files ...string) *FileManager {
	t.Helper()
	src := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(src, f), []byte(`{}`), 0644))
	}
	req := &types.ConversionRequest{SourceDir: src, DestDir: t.TempDir()}
	return NewFileManager(req, ".json", ".csv")
}

func TestDiscoverInputFiles_FiltersByExtensionMarker(t *testing.T) {
	t.Parallel()

	fm := newTestManager(t, "a.json", "b.txt", "c.json.bak", "readme.md")
	require.NoError(t, os.Mkdir(filepath.Join(fm.SourceDir, "nested.json"), 0755))

	files, err := fm.DiscoverInputFiles(nil)

	require.NoError(t, err)
	require.ElementsMatch(t, []types.SourceFile{"a.json", "c.json.bak"}, files)
}

func TestDiscoverInputFiles_Exclusions(t *testing.T) {
	t.Parallel()

	fm := newTestManager(t, "a.json", "b.json", "c.json", "d.json")

	orders := []string{
		"b.json,d.json",
		"d.json,b.json",
		"  d.json ,   b.json  ",
		",b.json,,d.json,",
	}

	for _, list := range orders {
		files, err := fm.DiscoverInputFiles(types.ParseExclusionList(list))
		require.NoError(t, err)
		require.ElementsMatch(t, []types.SourceFile{"a.json", "c.json"}, files, "exclude=%q", list)
	}
}

func TestDiscoverInputFiles_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	fm := &FileManager{SourceDir: filepath.Join(t.TempDir(), "missing"), InputExtension: ".json"}

	_, err := fm.DiscoverInputFiles(nil)

	var dirErr *types.DirectoryAccessError
	require.True(t, errors.As(err, &dirErr))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	fm := &FileManager{DestDir: "out", InputExtension: ".json", OutputExtension: ".csv"}

	require.Equal(t, filepath.Join("out", "orders.csv"), fm.OutputPath("orders.json"))
	require.Equal(t, filepath.Join("out", "a.csv.json"), fm.OutputPath("a.json.json"))
	require.Equal(t, filepath.Join("out", "notes.csv"), fm.OutputPath("notes"))
}

func TestWriteOutput_ReplacesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	fm := newTestManager(t)
	out := filepath.Join(fm.DestDir, "a.csv")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0644))

	require.NoError(t, fm.WriteOutput(out, []byte("a\n1\n")))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "a\n1\n", string(data))
	entries, err := os.ReadDir(fm.DestDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteOutput_MissingDestination(t *testing.T) {
	t.Parallel()

	fm := newTestManager(t)
	out := filepath.Join(fm.DestDir, "missing", "a.csv")

	err := fm.WriteOutput(out, []byte("a\n"))

	require.Error(t, err)
	require.False(t, DirExists(filepath.Dir(out)))
}
