package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"gptinstaller/internal/cli/output"
	env "gptinstaller/pkg"
	"gptinstaller/pkg/installer"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// InstallCmd installs the converter into the user's home directory, or
// upgrades an existing installation while preserving the style/ and images/
// user-data directories.
type InstallCmd struct {
	URL      string `help:"ChatGPT conversation URL to store as configuration (skips the interactive prompt)" placeholder:"URL"`
	SkipDeps bool   `help:"Skip virtual environment provisioning and dependency installation"`
}

func (c *InstallCmd) Run(ctx *kong.Context) error {
	lay := installer.NewLayout(env.HomeDir)

	cloneOut, toolOut, closeBars := toolWriters()
	defer closeBars()

	inst := installer.New(lay)
	inst.PresetURL = c.URL
	inst.SkipDeps = c.SkipDeps
	inst.Cloner = installer.GitCloner{Progress: cloneOut}
	inst.Runner = installer.ExecRunner{Stdout: toolOut, Stderr: os.Stderr}
	inst.Info = output.Info
	inst.Warn = output.Warning

	res, err := inst.InstallOrUpgrade(context.Background())
	if err != nil {
		return err
	}
	closeBars()

	fmt.Println()
	output.Success("Installation complete!")
	label := color.New(color.FgCyan).Sprint
	fmt.Printf("%s %s\n", label("Install dir: "), lay.Target)
	fmt.Printf("%s %s\n", label("Config file: "), lay.URLFile())
	fmt.Printf("%s %s, %s\n", label("Launchers:   "), lay.ConverterLauncher(), lay.FoldersLauncher())
	if res.BackupDir != "" {
		fmt.Printf("%s %s\n", label("Backup:      "), res.BackupDir)
	}
	if !res.DepsInstalled {
		output.Warning("Python dependencies were not installed")
	}
	if res.PathUpdated {
		output.Tip("Restart your shell (or 'source %s') so %s is on your PATH", lay.Zshrc, lay.BinDir)
	}
	output.Info("Run '%s' to start the converter, '%s' to open its folders",
		installer.ConverterLauncherName, installer.FoldersLauncherName)
	return nil
}

// toolWriters picks where git and pip output goes. At normal verbosity the
// output only feeds spinners; at extra/debug it is streamed to the terminal.
func toolWriters() (clone io.Writer, tools io.Writer, done func()) {
	if currentVerbosity >= VerbosityExtra {
		return os.Stdout, os.Stdout, func() {}
	}
	cloneBar := output.SidebandWriter("clone")
	toolBar := output.SidebandWriter("setup")
	var closed bool
	return cloneBar, toolBar, func() {
		if closed {
			return
		}
		closed = true
		cloneBar.Close()
		toolBar.Close()
	}
}
