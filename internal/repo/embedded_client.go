package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	git "gopkg.in/src-d/go-git.v4"

	"gitmarks/internal/logging"
)

// EmbeddedClient implements Client with go-git, so no git binary is needed.
type EmbeddedClient struct {
	logger *slog.Logger
}

// NewEmbeddedClient returns a go-git backed client.
func NewEmbeddedClient(logger *slog.Logger) *EmbeddedClient {
	return &EmbeddedClient{logger: logging.NewComponentLogger(logger, "go-git")}
}

// Init creates a non-bare repository in dir.
func (c *EmbeddedClient) Init(_ context.Context, dir string) error {
	_, err := git.PlainInit(dir, false)
	if err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return newGitError("init", []string{dir}, dir, err, "")
	}
	return nil
}

// Clone fetches remote into target.
func (c *EmbeddedClient) Clone(ctx context.Context, remote, target string) error {
	_, err := git.PlainCloneContext(ctx, target, false, &git.CloneOptions{
		URL:      remote,
		Progress: progressWriter{logger: c.logger},
	})
	if err != nil {
		return newGitError("clone", []string{remote, target}, filepath.Dir(target), err, "")
	}
	return nil
}

// progressWriter forwards sideband progress to the debug log.
type progressWriter struct {
	logger *slog.Logger
}

func (w progressWriter) Write(p []byte) (int, error) {
	w.logger.Debug("clone progress", logging.String("output", string(p)))
	return len(p), nil
}

var _ io.Writer = progressWriter{}
