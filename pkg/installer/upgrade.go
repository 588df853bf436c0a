package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
)

// backupTimeFormat names snapshot directories, e.g. backup-20260823-141502.
const backupTimeFormat = "20060102-150405"

// upgradeWithPreservation replaces the existing installation with a fresh
// clone while keeping the preserved user-data directories intact. The old
// tree (minus the preserved directories) ends up in a new timestamped
// snapshot under the backup root; snapshots accumulate forever, there is no
// pruning.
//
// There is no rollback. If the re-clone fails after the old tree has been
// removed, the error names the backup and holding locations so the user can
// recover by hand.
func (inst *Installer) upgradeWithPreservation(ctx context.Context) (string, error) {
	lay := inst.Layout

	backupDir, err := createBackupDir(lay.BackupRoot, inst.Now())
	if err != nil {
		return "", err
	}
	inst.Info("Backing up previous installation to %s", backupDir)
	if err := moveChildren(lay.Target, backupDir, PreservedDirs); err != nil {
		return "", fmt.Errorf("back up previous installation: %w", err)
	}

	// The holding directory lives next to the backups, not under
	// os.TempDir: os.Rename cannot cross filesystems, and /tmp often does.
	// A uuid keeps a crashed earlier run from colliding with this one.
	holding := filepath.Join(lay.BackupRoot, ".preserve-"+uuid.NewString())
	if err := os.MkdirAll(holding, 0755); err != nil {
		return "", fmt.Errorf("create holding directory: %w", err)
	}
	stashed, err := stashPreserved(lay.Target, holding)
	if err != nil {
		return "", fmt.Errorf("stash user data: %w", err)
	}

	if err := os.RemoveAll(lay.Target); err != nil {
		return "", fmt.Errorf("remove previous installation: %w", err)
	}
	if err := os.MkdirAll(lay.Target, 0755); err != nil {
		return "", fmt.Errorf("recreate target directory: %w", err)
	}

	inst.Info("Cloning %s into %s", inst.RepoURL, lay.Target)
	if err := inst.Cloner.Clone(ctx, inst.RepoURL, lay.Target); err != nil {
		return "", fmt.Errorf(
			"re-clone after removing the previous installation (backup kept at %s, user data at %s): %w",
			backupDir, holding, err)
	}

	if err := restorePreserved(holding, lay.Target, stashed); err != nil {
		return "", fmt.Errorf("restore user data: %w", err)
	}
	os.Remove(holding) // empty after restore; best effort

	return backupDir, nil
}

// createBackupDir makes a fresh timestamped snapshot directory under root.
// An existing snapshot is never overwritten: on a timestamp collision a
// numeric suffix is appended until creation succeeds.
func createBackupDir(root string, now time.Time) (string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("create backup root: %w", err)
	}
	base := "backup-" + now.Format(backupTimeFormat)
	name := base
	for i := 2; ; i++ {
		dir := filepath.Join(root, name)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return dir, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("create backup directory: %w", err)
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}

// moveChildren moves every direct child of src into dst, skipping the named
// children. Nested files travel inside their containing directory, so the
// relative structure is preserved in dst.
func moveChildren(src, dst string, skip []string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if slices.Contains(skip, entry.Name()) {
			continue
		}
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("move %s: %w", from, err)
		}
	}
	return nil
}

// stashPreserved relocates the preserved directories out of the target tree
// and returns the names that were actually present. Absent directories are
// tolerated silently.
func stashPreserved(target, holding string) ([]string, error) {
	var stashed []string
	for _, name := range PreservedDirs {
		from := filepath.Join(target, name)
		if _, err := os.Stat(from); os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, err
		}
		if err := os.Rename(from, filepath.Join(holding, name)); err != nil {
			return nil, fmt.Errorf("move %s aside: %w", from, err)
		}
		stashed = append(stashed, name)
	}
	return stashed, nil
}

// restorePreserved moves the stashed directories back into the freshly
// cloned tree. Only directories that were stashed come back; absent ones
// are not recreated empty.
func restorePreserved(holding, target string, stashed []string) error {
	for _, name := range stashed {
		from := filepath.Join(holding, name)
		to := filepath.Join(target, name)
		// The fresh clone may ship a skeleton directory under the same
		// name; the user's copy wins.
		if err := os.RemoveAll(to); err != nil {
			return err
		}
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("restore %s: %w", name, err)
		}
	}
	return nil
}
