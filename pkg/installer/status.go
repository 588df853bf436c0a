package installer

import (
	"os"
	"strings"
)

// A Status is a read-only snapshot of the installation for reporting.
type Status struct {
	Installed         bool
	VenvPresent       bool
	ConfigURL         string
	ConverterLauncher bool
	FoldersLauncher   bool
	BackupCount       int
	Manifest          *Manifest // nil when no manifest has been written
}

// Inspect probes the layout without mutating anything.
func Inspect(l Layout) (Status, error) {
	var st Status

	installed, err := IsInstalled(l.Target)
	if err != nil {
		return st, err
	}
	st.Installed = installed

	if fi, err := os.Stat(l.VenvPython()); err == nil && !fi.IsDir() {
		st.VenvPresent = true
	}
	if data, err := os.ReadFile(l.URLFile()); err == nil {
		st.ConfigURL = strings.TrimSpace(string(data))
	}
	if _, err := os.Stat(l.ConverterLauncher()); err == nil {
		st.ConverterLauncher = true
	}
	if _, err := os.Stat(l.FoldersLauncher()); err == nil {
		st.FoldersLauncher = true
	}
	if backups, err := ListBackups(l.BackupRoot); err == nil {
		st.BackupCount = len(backups)
	}
	if m, err := ReadManifest(l.ManifestFile()); err == nil {
		st.Manifest = &m
	}
	return st, nil
}
