package repo

import (
	"context"
	"fmt"
	"log/slog"

	"gitmarks/internal/config"
)

// Client performs the two version-control operations the bootstrapper needs.
type Client interface {
	// Init initializes a repository in dir. Re-initializing an existing
	// repository is not an error.
	Init(ctx context.Context, dir string) error
	// Clone clones remote into target, an absolute path whose parent exists.
	Clone(ctx context.Context, remote, target string) error
}

// NewClient returns the client selected by cfg.Git.Backend.
func NewClient(cfg *config.Config, logger *slog.Logger) (Client, error) {
	switch cfg.Git.Backend {
	case config.BackendExec, "":
		return NewExecClient(cfg.GitBinary(), NewExecExecutor(), logger), nil
	case config.BackendEmbedded:
		return NewEmbeddedClient(logger), nil
	default:
		return nil, fmt.Errorf("unsupported git backend %q", cfg.Git.Backend)
	}
}
