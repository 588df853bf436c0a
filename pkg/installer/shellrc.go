package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// pathExportLine is what gets appended to the shell startup file when the
// bin directory is not yet reachable.
const pathExportLine = `export PATH="$HOME/.local/bin:$PATH"`

// EnsurePathExport makes binDir reachable on PATH across shell sessions.
// It is idempotent: nothing is appended when the current $PATH already
// contains binDir, or when an export line in the rc file already mentions it
// as a real PATH entry. Existing PATH lines are parsed entry by entry rather
// than substring-matched, so an unrelated directory that merely contains the
// bin path as a substring does not suppress the append.
//
// It reports whether a line was appended.
func EnsurePathExport(rcFile, binDir, home, currentPath string) (bool, error) {
	if pathListContains(currentPath, binDir, home) {
		return false, nil
	}

	data, err := os.ReadFile(rcFile)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", rcFile, err)
	}
	if rcExportsDir(string(data), binDir, home) {
		return false, nil
	}

	f, err := os.OpenFile(rcFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", rcFile, err)
	}
	defer f.Close()

	var b strings.Builder
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n# added by gpt-installer\n")
	b.WriteString(pathExportLine + "\n")
	if _, err := f.WriteString(b.String()); err != nil {
		return false, fmt.Errorf("append to %s: %w", rcFile, err)
	}
	return true, nil
}

// rcExportsDir reports whether any PATH assignment line in the rc file
// content already lists dir as an entry. Comment lines are ignored.
func rcExportsDir(content, dir, home string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		if !strings.HasPrefix(line, "PATH=") {
			continue
		}
		value := strings.Trim(strings.TrimPrefix(line, "PATH="), `"'`)
		if pathListContains(value, dir, home) {
			return true
		}
	}
	return false
}

// pathListContains reports whether a colon-separated PATH value contains dir
// as an exact entry, after expanding $HOME/${HOME}/~ against home.
func pathListContains(pathList, dir, home string) bool {
	want := filepath.Clean(dir)
	for _, entry := range strings.Split(pathList, ":") {
		if entry == "" || entry == "$PATH" || entry == "${PATH}" {
			continue
		}
		if filepath.Clean(expandHome(entry, home)) == want {
			return true
		}
	}
	return false
}

func expandHome(entry, home string) string {
	entry = strings.ReplaceAll(entry, "${HOME}", home)
	entry = strings.ReplaceAll(entry, "$HOME", home)
	if entry == "~" {
		return home
	}
	if strings.HasPrefix(entry, "~/") {
		return filepath.Join(home, entry[2:])
	}
	return entry
}
