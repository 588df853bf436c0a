package installer

import (
	"fmt"
	"os"
	"runtime"
)

// WriteLaunchers regenerates both launcher scripts in the bin directory and
// marks them executable. Existing launchers are overwritten, never merged,
// so repeated runs with the same layout produce byte-identical files.
func WriteLaunchers(l Layout) error {
	if err := os.MkdirAll(l.BinDir, 0755); err != nil {
		return fmt.Errorf("create bin directory: %w", err)
	}
	if err := writeExecutable(l.ConverterLauncher(), converterScript(l)); err != nil {
		return err
	}
	return writeExecutable(l.FoldersLauncher(), foldersScript(l))
}

// converterScript activates the virtual environment and hands over to the
// main program, passing arguments and the exit code straight through.
func converterScript(l Layout) string {
	return fmt.Sprintf(`#!/bin/sh
# Generated by gpt-installer. Regenerated on every install, do not edit.
. "%s/bin/activate"
exec python "%s" "$@"
`, l.VenvDir(), l.EntryScript())
}

// foldersScript opens the two user-data folders plus the output folder in
// the desktop file browser. It has no meaningful exit code.
func foldersScript(l Layout) string {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return fmt.Sprintf(`#!/bin/sh
# Generated by gpt-installer. Regenerated on every install, do not edit.
for dir in "%s" "%s" "%s"; do
	%s "$dir" >/dev/null 2>&1 &
done
`, l.StyleDir(), l.ImagesDir(), l.OutDir(), opener)
}

func writeExecutable(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return fmt.Errorf("write launcher %s: %w", path, err)
	}
	// WriteFile keeps the old mode when the file already existed.
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("mark %s executable: %w", path, err)
	}
	return nil
}
