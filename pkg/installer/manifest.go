package installer

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// A Manifest records what the installer last did to the target directory.
// It is rewritten on every run; during an upgrade the previous manifest
// travels into the backup snapshot with the rest of the old tree.
type Manifest struct {
	RepoURL          string    `toml:"repo_url"`
	InstallerVersion string    `toml:"installer_version"`
	InstalledAt      time.Time `toml:"installed_at"`
	LastBackup       string    `toml:"last_backup,omitempty"`
	ConfigFile       string    `toml:"config_file"`
}

// Write persists the manifest to its configuration file.
func (m Manifest) Write(path string) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := toml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
