package env

import (
	"fmt"
	"os"
	"path/filepath"
)

// RepoURL is the fixed upstream repository the installer clones into the
// target directory. The installer never interprets its contents beyond the
// well-known relative paths (src/run.py, src/url.txt, requirements.txt).
const RepoURL = "https://github.com/gpt-image-tools/gpt-image-converter.git"

// HomeDir is the home directory every well-known path is derived from.
// It defaults to the current user's home and can be overridden with the
// global --home flag.
var HomeDir string

func init() {
	if home, err := os.UserHomeDir(); err == nil {
		SetHome(home)
	}
}

// SetHome replaces the home directory used to derive all installer paths.
func SetHome(home string) error {
	if home == "" {
		return fmt.Errorf("invalid home directory")
	}
	if abs, err := filepath.Abs(home); err == nil {
		home = abs
	}
	HomeDir = home
	return nil
}
