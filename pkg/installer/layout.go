package installer

import "path/filepath"

// PreservedDirs are the user-data directories that must survive an upgrade.
// Their contents are relocated to a holding directory during re-cloning and
// moved back afterwards; they are never deleted.
var PreservedDirs = []string{"style", "images"}

// Names of the generated launcher scripts placed in the bin directory.
const (
	ConverterLauncherName = "gpt-converter"
	FoldersLauncherName   = "gpt-image-folders"
)

// A Layout holds every filesystem path the installer touches, all derived
// from a single home directory.
type Layout struct {
	Home       string // user home directory
	Target     string // installation root holding the cloned app tree
	BackupRoot string // accumulates timestamped upgrade snapshots
	BinDir     string // user-local executable directory on PATH
	Zshrc      string // shell startup file mutated for PATH
}

// NewLayout derives the installer's filesystem layout from a home directory.
func NewLayout(home string) Layout {
	return Layout{
		Home:       home,
		Target:     filepath.Join(home, "gpt-image-converter"),
		BackupRoot: filepath.Join(home, ".gpt-image-converter-backups"),
		BinDir:     filepath.Join(home, ".local", "bin"),
		Zshrc:      filepath.Join(home, ".zshrc"),
	}
}

// VenvDir returns the virtual environment directory inside the target.
func (l Layout) VenvDir() string {
	return filepath.Join(l.Target, ".venv")
}

// VenvPython returns the virtual environment's python interpreter.
func (l Layout) VenvPython() string {
	return filepath.Join(l.VenvDir(), "bin", "python")
}

// VenvPip returns the virtual environment's pip executable.
func (l Layout) VenvPip() string {
	return filepath.Join(l.VenvDir(), "bin", "pip")
}

// SrcDir returns the cloned application's source directory.
func (l Layout) SrcDir() string {
	return filepath.Join(l.Target, "src")
}

// EntryScript returns the application's main program.
func (l Layout) EntryScript() string {
	return filepath.Join(l.SrcDir(), "run.py")
}

// URLFile returns the one-line configuration file, overwritten on every run.
func (l Layout) URLFile() string {
	return filepath.Join(l.SrcDir(), "url.txt")
}

// Requirements returns the dependency manifest path. Its absence is not an
// error, only a warning.
func (l Layout) Requirements() string {
	return filepath.Join(l.Target, "requirements.txt")
}

// OutDir returns the converter's output directory inside the target.
func (l Layout) OutDir() string {
	return filepath.Join(l.Target, "out")
}

// StyleDir returns the preserved style/ user-data directory.
func (l Layout) StyleDir() string {
	return filepath.Join(l.Target, "style")
}

// ImagesDir returns the preserved images/ user-data directory.
func (l Layout) ImagesDir() string {
	return filepath.Join(l.Target, "images")
}

// ManifestFile returns the install manifest written at the end of each run.
func (l Layout) ManifestFile() string {
	return filepath.Join(l.Target, "install.toml")
}

// ConverterLauncher returns the launcher that runs the converter.
func (l Layout) ConverterLauncher() string {
	return filepath.Join(l.BinDir, ConverterLauncherName)
}

// FoldersLauncher returns the launcher that opens the user-data folders.
func (l Layout) FoldersLauncher() string {
	return filepath.Join(l.BinDir, FoldersLauncherName)
}
