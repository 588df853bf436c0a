package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinPythonVersion is the oldest interpreter the converter supports.
const MinPythonVersion = "3.9.0"

// A CommandRunner executes external tools (python3, pip). Tests substitute
// a fake so provisioning can be exercised without an interpreter installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec, streaming their output to the
// configured writers.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func (r ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// provisionPython creates the virtual environment and installs the
// application's dependencies. A missing requirements.txt is a warning, not
// an error; everything else is fail-fast.
func (inst *Installer) provisionPython(ctx context.Context, res *Result) error {
	if err := inst.checkPython(ctx); err != nil {
		return err
	}

	lay := inst.Layout
	inst.Info("Creating virtual environment at %s", lay.VenvDir())
	if err := inst.Runner.Run(ctx, "python3", "-m", "venv", lay.VenvDir()); err != nil {
		return fmt.Errorf("create virtual environment: %w", err)
	}

	req := lay.Requirements()
	if _, err := os.Stat(req); os.IsNotExist(err) {
		inst.Warn("No dependency manifest at %s, skipping dependency installation", req)
		return nil
	} else if err != nil {
		return fmt.Errorf("check dependency manifest: %w", err)
	}

	inst.Info("Installing dependencies from %s", req)
	if err := inst.Runner.Run(ctx, lay.VenvPip(), "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("upgrade pip: %w", err)
	}
	if err := inst.Runner.Run(ctx, lay.VenvPip(), "install", "-r", req); err != nil {
		return fmt.Errorf("install dependencies: %w", err)
	}
	res.DepsInstalled = true
	return nil
}

// checkPython verifies that a python3 interpreter is present and recent
// enough before any venv work starts.
func (inst *Installer) checkPython(ctx context.Context) error {
	out, err := inst.Runner.Output(ctx, "python3", "--version")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPythonNotFound, err)
	}
	ver, err := parsePythonVersion(out)
	if err != nil {
		return fmt.Errorf("parse %q: %w", out, err)
	}
	min := semver.MustParse(MinPythonVersion)
	if ver.LessThan(min) {
		return fmt.Errorf("%w: found %s, need %s or newer", ErrPythonTooOld, ver, min)
	}
	return nil
}

// parsePythonVersion extracts the version from "Python 3.11.4" style output.
func parsePythonVersion(s string) (*semver.Version, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty version output")
	}
	return semver.NewVersion(fields[len(fields)-1])
}
