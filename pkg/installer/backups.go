package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// A Backup describes one timestamped snapshot under the backup root.
type Backup struct {
	Name      string
	Path      string
	CreatedAt time.Time
	Entries   int // direct children preserved in the snapshot
}

// ListBackups returns the snapshots under root, newest first. Snapshots
// accumulate across upgrades and are never pruned, so the list only grows.
// A missing backup root simply means no upgrade has run yet.
func ListBackups(root string) ([]Backup, error) {
	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup root: %w", err)
	}

	var backups []Backup
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "backup-") {
			continue
		}
		b := Backup{
			Name:      entry.Name(),
			Path:      filepath.Join(root, entry.Name()),
			CreatedAt: backupTime(entry.Name()),
		}
		if children, err := os.ReadDir(b.Path); err == nil {
			b.Entries = len(children)
		}
		backups = append(backups, b)
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].CreatedAt.Equal(backups[j].CreatedAt) {
			return backups[i].CreatedAt.After(backups[j].CreatedAt)
		}
		return backups[i].Name > backups[j].Name
	})
	return backups, nil
}

// backupTime recovers the creation time encoded in a snapshot name,
// tolerating the numeric suffix added on timestamp collisions.
func backupTime(name string) time.Time {
	raw := strings.TrimPrefix(name, "backup-")
	if len(raw) > len(backupTimeFormat) {
		raw = raw[:len(backupTimeFormat)]
	}
	ts, err := time.ParseInLocation(backupTimeFormat, raw, time.Local)
	if err != nil {
		return time.Time{}
	}
	return ts
}
