package installer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLaunchers_Contents(t *testing.T) {
	lay := NewLayout(t.TempDir())
	require.NoError(t, WriteLaunchers(lay))

	converter, err := os.ReadFile(lay.ConverterLauncher())
	require.NoError(t, err)
	assert.Contains(t, string(converter), "#!/bin/sh")
	assert.Contains(t, string(converter), lay.VenvDir()+"/bin/activate")
	assert.Contains(t, string(converter), lay.EntryScript())
	assert.Contains(t, string(converter), `exec python`)
	assert.Contains(t, string(converter), `"$@"`, "arguments and exit code must pass through")

	folders, err := os.ReadFile(lay.FoldersLauncher())
	require.NoError(t, err)
	for _, dir := range []string{lay.StyleDir(), lay.ImagesDir(), lay.OutDir()} {
		assert.Contains(t, string(folders), dir)
	}
}

func TestWriteLaunchers_Executable(t *testing.T) {
	lay := NewLayout(t.TempDir())
	require.NoError(t, WriteLaunchers(lay))

	for _, path := range []string{lay.ConverterLauncher(), lay.FoldersLauncher()} {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, fi.Mode()&0111, "%s must be executable", path)
	}
}

func TestWriteLaunchers_OverwritesAndRemarksExecutable(t *testing.T) {
	lay := NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(lay.BinDir, 0755))
	// A stale, non-executable launcher from a previous run.
	require.NoError(t, os.WriteFile(lay.ConverterLauncher(), []byte("stale"), 0644))

	require.NoError(t, WriteLaunchers(lay))

	data, err := os.ReadFile(lay.ConverterLauncher())
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))

	fi, err := os.Stat(lay.ConverterLauncher())
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&0111)
}

func TestWriteLaunchers_Deterministic(t *testing.T) {
	lay := NewLayout(t.TempDir())
	require.NoError(t, WriteLaunchers(lay))
	first := readLaunchers(t, lay)

	require.NoError(t, WriteLaunchers(lay))
	assert.Equal(t, first, readLaunchers(t, lay))
}
