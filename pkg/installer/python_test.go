package installer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePythonVersion(t *testing.T) {
	for raw, want := range map[string]string{
		"Python 3.12.1": "3.12.1",
		"Python 3.9.0":  "3.9.0",
		"3.11.4":        "3.11.4",
	} {
		ver, err := parsePythonVersion(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, ver.String())
	}

	_, err := parsePythonVersion("")
	assert.Error(t, err)
	_, err = parsePythonVersion("Python three")
	assert.Error(t, err)
}

func TestCheckPython_TooOld(t *testing.T) {
	inst := New(NewLayout(t.TempDir()))
	inst.Runner = &fakeRunner{version: "Python 3.8.10"}

	err := inst.checkPython(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPythonTooOld)
}

func TestCheckPython_NotFound(t *testing.T) {
	inst := New(NewLayout(t.TempDir()))
	inst.Runner = &fakeRunner{}

	err := inst.checkPython(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPythonNotFound)
}

func TestProvision_MissingManifestWarnsButSucceeds(t *testing.T) {
	home := t.TempDir()
	inst, cloner, runner := testInstaller(t, home)
	delete(cloner.files, "requirements.txt")

	var warnings []string
	inst.Warn = func(format string, a ...any) {
		warnings = append(warnings, fmt.Sprintf(format, a...))
	}

	res, err := inst.InstallOrUpgrade(context.Background())
	require.NoError(t, err)

	assert.False(t, res.DepsInstalled)
	assert.False(t, runner.called(inst.Layout.VenvPip()), "pip must not run without a manifest")
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "requirements.txt")

	// Both launchers still come out of a manifest-less run.
	assert.FileExists(t, inst.Layout.ConverterLauncher())
	assert.FileExists(t, inst.Layout.FoldersLauncher())
}

func TestInstall_SkipDeps(t *testing.T) {
	home := t.TempDir()
	inst, _, runner := testInstaller(t, home)
	inst.SkipDeps = true

	res, err := inst.InstallOrUpgrade(context.Background())
	require.NoError(t, err)
	assert.False(t, res.DepsInstalled)
	assert.Empty(t, runner.calls)
	assert.NoDirExists(t, inst.Layout.VenvDir())
}
