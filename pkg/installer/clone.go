package installer

import (
	"context"
	"errors"
	"fmt"
	"io"

	git "github.com/go-git/go-git/v5"
)

// A Cloner fetches the application repository into a directory. The real
// implementation uses go-git; tests substitute a fake that writes a fixture
// tree so no test touches the network.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// GitCloner clones over the network with go-git.
type GitCloner struct {
	Progress io.Writer // sideband progress from the remote; nil discards it
}

func (c GitCloner) Clone(ctx context.Context, url, dir string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Progress: c.Progress,
	})
	if err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	return nil
}

// IsInstalled reports whether dir already holds an installation, probing for
// version-control metadata the same way the upgrade decision is made.
func IsInstalled(dir string) (bool, error) {
	_, err := git.PlainOpen(dir)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	return false, fmt.Errorf("probe %s for an existing installation: %w", dir, err)
}
