// Package installer brings a target directory into one of two consistent
// states, freshly cloned or upgraded with the user-data directories
// preserved, then provisions a Python virtual environment and materializes
// two launcher scripts on the user's PATH.
//
// Every step is fail-fast: the first error aborts the remaining steps, and
// there is no transactional rollback.
package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gptinstaller/internal/version"
	env "gptinstaller/pkg"
)

// Sentinel errors surfaced to the CLI so it can print remedial tips.
var (
	ErrPythonNotFound = errors.New("python3 interpreter not found")
	ErrPythonTooOld   = errors.New("python3 interpreter is too old")
	ErrNoInput        = errors.New("cannot read configuration value from input")
	ErrNotInstalled   = errors.New("converter is not installed")
)

// An Installer performs the install-or-upgrade flow against a Layout.
// The zero value is not usable; construct with New and override fields as
// needed before calling InstallOrUpgrade.
type Installer struct {
	Layout  Layout
	RepoURL string

	Cloner Cloner
	Runner CommandRunner

	// Input is where the interactive configuration prompt reads from.
	// PresetURL, when non-empty, is used instead and Input is never read.
	Input     io.Reader
	PresetURL string

	// SkipDeps skips virtual-environment provisioning entirely.
	SkipDeps bool

	// PathVar is the current $PATH, consulted before mutating the shell
	// startup file.
	PathVar string

	Now func() time.Time

	// Info and Warn narrate progress; both default to no-ops so the
	// package stays silent under test.
	Info func(format string, a ...any)
	Warn func(format string, a ...any)
}

// New returns an Installer with production defaults for the given layout.
func New(layout Layout) *Installer {
	return &Installer{
		Layout:  layout,
		RepoURL: env.RepoURL,
		Cloner:  GitCloner{},
		Runner:  ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
		Input:   os.Stdin,
		PathVar: os.Getenv("PATH"),
		Now:     time.Now,
		Info:    func(string, ...any) {},
		Warn:    func(string, ...any) {},
	}
}

// A Result summarizes what a completed run did, for the success report.
type Result struct {
	Fresh         bool   // true for a first install, false for an upgrade
	BackupDir     string // set when an upgrade ran
	ConfigURL     string // the value written to url.txt
	DepsInstalled bool   // false when requirements.txt was absent or skipped
	PathUpdated   bool   // true when a PATH export was appended to the rc file
	Launchers     []string
}

// InstallOrUpgrade runs the whole installation sequence. Running it twice in
// a row yields exactly one target directory, one configuration file holding
// the most recent input, and byte-identical launchers.
func (inst *Installer) InstallOrUpgrade(ctx context.Context) (*Result, error) {
	res := &Result{}
	lay := inst.Layout

	if err := os.MkdirAll(lay.Target, 0755); err != nil {
		return nil, fmt.Errorf("create target directory: %w", err)
	}

	installed, err := IsInstalled(lay.Target)
	if err != nil {
		return nil, err
	}
	if installed {
		inst.Info("Existing installation detected in %s, upgrading", lay.Target)
		backup, err := inst.upgradeWithPreservation(ctx)
		if err != nil {
			return nil, err
		}
		res.BackupDir = backup
	} else {
		res.Fresh = true
		inst.Info("Cloning %s into %s", inst.RepoURL, lay.Target)
		if err := inst.Cloner.Clone(ctx, inst.RepoURL, lay.Target); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(lay.OutDir(), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	url, err := inst.resolveURL()
	if err != nil {
		return nil, err
	}
	if err := WriteURLFile(lay.URLFile(), url); err != nil {
		return nil, err
	}
	res.ConfigURL = url

	if inst.SkipDeps {
		inst.Warn("Skipping virtual environment and dependency installation (--skip-deps)")
	} else {
		if err := inst.provisionPython(ctx, res); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(lay.BinDir, 0755); err != nil {
		return nil, fmt.Errorf("create bin directory: %w", err)
	}
	added, err := EnsurePathExport(lay.Zshrc, lay.BinDir, lay.Home, inst.PathVar)
	if err != nil {
		return nil, err
	}
	if added {
		inst.Info("Added %s to PATH in %s", lay.BinDir, lay.Zshrc)
	}
	res.PathUpdated = added

	if err := WriteLaunchers(lay); err != nil {
		return nil, err
	}
	res.Launchers = []string{lay.ConverterLauncher(), lay.FoldersLauncher()}

	manifest := Manifest{
		RepoURL:          inst.RepoURL,
		InstallerVersion: version.Current,
		InstalledAt:      inst.Now(),
		LastBackup:       res.BackupDir,
		ConfigFile:       lay.URLFile(),
	}
	if err := manifest.Write(lay.ManifestFile()); err != nil {
		return nil, err
	}

	return res, nil
}

// resolveURL obtains the one-line configuration value, either from the
// preset flag or by reading a single line from the interactive input.
// A read failure aborts the whole run; the content is never validated.
func (inst *Installer) resolveURL() (string, error) {
	if inst.PresetURL != "" {
		return inst.PresetURL, nil
	}
	inst.Info("Enter the ChatGPT conversation URL for the converter:")
	reader := bufio.NewReader(inst.Input)
	line, err := reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", fmt.Errorf("%w: %v", ErrNoInput, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteURLFile writes the configuration value verbatim plus a trailing
// newline, overwriting any previous content.
func WriteURLFile(path, value string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create configuration directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(value+"\n"), 0644); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}
	return nil
}
