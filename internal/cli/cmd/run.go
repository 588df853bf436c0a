package cmd

import (
	"fmt"
	"os"
	"os/exec"

	env "gptinstaller/pkg"
	"gptinstaller/pkg/installer"

	"github.com/alecthomas/kong"
)

// RunCmd starts the installed converter through its virtual environment,
// the same action the generated gpt-converter launcher performs. The
// converter's exit code is passed through.
type RunCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Arguments passed to the converter"`
}

func (c *RunCmd) Run(ctx *kong.Context) error {
	lay := installer.NewLayout(env.HomeDir)

	installed, err := installer.IsInstalled(lay.Target)
	if err != nil {
		return err
	}
	if !installed {
		return installer.ErrNotInstalled
	}
	if _, err := os.Stat(lay.VenvPython()); err != nil {
		return fmt.Errorf("%w: virtual environment missing at %s", installer.ErrNotInstalled, lay.VenvDir())
	}

	run := exec.Command(lay.VenvPython(), append([]string{lay.EntryScript()}, c.Args...)...)
	run.Dir = lay.Target
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	// *exec.ExitError implements kong.ExitCoder, so the converter's exit
	// code propagates unchanged.
	return run.Run()
}
