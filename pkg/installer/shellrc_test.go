package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePathExport_AppendsWhenMissing(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	binDir := filepath.Join(home, ".local", "bin")

	added, err := EnsurePathExport(rc, binDir, home, "/usr/bin:/bin")
	require.NoError(t, err)
	assert.True(t, added)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `export PATH="$HOME/.local/bin:$PATH"`)
}

func TestEnsurePathExport_IdempotentAcrossRuns(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	binDir := filepath.Join(home, ".local", "bin")

	added, err := EnsurePathExport(rc, binDir, home, "/usr/bin")
	require.NoError(t, err)
	require.True(t, added)

	added, err = EnsurePathExport(rc, binDir, home, "/usr/bin")
	require.NoError(t, err)
	assert.False(t, added)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), ".local/bin"))
}

func TestEnsurePathExport_SkipsWhenAlreadyOnPath(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	binDir := filepath.Join(home, ".local", "bin")

	added, err := EnsurePathExport(rc, binDir, home, "/usr/bin:"+binDir)
	require.NoError(t, err)
	assert.False(t, added)
	assert.NoFileExists(t, rc)
}

func TestEnsurePathExport_RecognizesExistingExportVariants(t *testing.T) {
	home := t.TempDir()
	binDir := filepath.Join(home, ".local", "bin")

	for name, line := range map[string]string{
		"home variable":  `export PATH="$HOME/.local/bin:$PATH"`,
		"braced home":    `export PATH="${HOME}/.local/bin:$PATH"`,
		"tilde":          `export PATH=~/.local/bin:$PATH`,
		"absolute":       `PATH="` + binDir + `:$PATH"`,
		"without export": `PATH=` + binDir + `:$PATH`,
	} {
		rc := filepath.Join(t.TempDir(), ".zshrc")
		require.NoError(t, os.WriteFile(rc, []byte("# prelude\n"+line+"\n"), 0644))

		added, err := EnsurePathExport(rc, binDir, home, "/usr/bin")
		require.NoError(t, err, name)
		assert.False(t, added, "%s should already satisfy the PATH check", name)
	}
}

func TestEnsurePathExport_IgnoresCommentsAndSubstrings(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	binDir := filepath.Join(home, ".local", "bin")

	content := strings.Join([]string{
		`# export PATH="$HOME/.local/bin:$PATH"`,           // commented out
		`export PATH="$HOME/.local/bin-unrelated:$PATH"`,   // substring, different dir
		`alias note='echo see $HOME/.local/bin for tools'`, // not a PATH line
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(rc, []byte(content), 0644))

	added, err := EnsurePathExport(rc, binDir, home, "/usr/bin")
	require.NoError(t, err)
	assert.True(t, added, "none of the existing lines actually export the bin dir")

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `export PATH="$HOME/.local/bin:$PATH"`)
}

func TestEnsurePathExport_AppendsNewlineToUnterminatedFile(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".zshrc")
	binDir := filepath.Join(home, ".local", "bin")
	require.NoError(t, os.WriteFile(rc, []byte("setopt autocd"), 0644))

	added, err := EnsurePathExport(rc, binDir, home, "/usr/bin")
	require.NoError(t, err)
	require.True(t, added)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "setopt autocd\n")
	assert.True(t, strings.HasSuffix(string(data), pathExportLine+"\n"))
}
