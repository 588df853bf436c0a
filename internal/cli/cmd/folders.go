package cmd

import (
	"errors"
	"fmt"
	"os"

	"gptinstaller/internal/cli/output"
	env "gptinstaller/pkg"
	"gptinstaller/pkg/installer"

	"github.com/alecthomas/kong"
	"github.com/pkg/browser"
)

// FoldersCmd opens the style/, images/ and out/ folders in the desktop file
// browser, the same action the generated gpt-image-folders launcher performs.
type FoldersCmd struct{}

func (c *FoldersCmd) Run(ctx *kong.Context) error {
	lay := installer.NewLayout(env.HomeDir)

	opened := 0
	for _, dir := range []string{lay.StyleDir(), lay.ImagesDir(), lay.OutDir()} {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			output.Warning("%s does not exist yet", dir)
			continue
		}
		if err := browser.OpenFile(dir); err != nil {
			return fmt.Errorf("open %s: %w", dir, err)
		}
		opened++
	}
	if opened == 0 {
		output.Tip("Run 'gpt-installer install' first to create the folders")
	}
	return nil
}
