package cmd

import (
	"os"
	"strconv"

	"gptinstaller/internal/cli/output"
	env "gptinstaller/pkg"
	"gptinstaller/pkg/installer"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"
)

// BackupsCmd lists the upgrade snapshots accumulated under the backup root.
// Snapshots are kept forever; this command never deletes anything.
type BackupsCmd struct{}

func (c *BackupsCmd) Run(ctx *kong.Context) error {
	lay := installer.NewLayout(env.HomeDir)

	backups, err := installer.ListBackups(lay.BackupRoot)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		output.Info("No backups yet; one is created each time an existing installation is upgraded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Created", "Entries"})
	for i, b := range backups {
		created := ""
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.Format("2006-01-02 15:04:05")
		}
		t.AppendRow(table.Row{strconv.Itoa(i + 1), b.Name, created, b.Entries})
	}
	t.Render()

	output.Status("Backup root: %s", lay.BackupRoot)
	return nil
}
