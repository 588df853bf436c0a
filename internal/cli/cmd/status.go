package cmd

import (
	"os"

	"gptinstaller/internal/cli/output"
	env "gptinstaller/pkg"
	"gptinstaller/pkg/installer"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"
)

// StatusCmd reports the state of the installation without changing anything.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *kong.Context) error {
	lay := installer.NewLayout(env.HomeDir)

	st, err := installer.Inspect(lay)
	if err != nil {
		return err
	}

	output.Header("GPT image converter installation")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendRow(table.Row{"Installed", yesNo(st.Installed)})
	t.AppendRow(table.Row{"Install dir", lay.Target})
	t.AppendRow(table.Row{"Virtual environment", yesNo(st.VenvPresent)})
	t.AppendRow(table.Row{"Configured URL", st.ConfigURL})
	t.AppendRow(table.Row{installer.ConverterLauncherName, yesNo(st.ConverterLauncher)})
	t.AppendRow(table.Row{installer.FoldersLauncherName, yesNo(st.FoldersLauncher)})
	t.AppendRow(table.Row{"Backups", st.BackupCount})
	if st.Manifest != nil {
		t.AppendRow(table.Row{"Last install", st.Manifest.InstalledAt.Format("2006-01-02 15:04:05")})
		t.AppendRow(table.Row{"Installer version", st.Manifest.InstallerVersion})
	}
	t.Render()

	if !st.Installed {
		output.Tip("Run 'gpt-installer install' to install the converter")
	}
	return nil
}
