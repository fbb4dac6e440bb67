package repo

import (
	"context"
	"log/slog"
	"path/filepath"

	"gitmarks/internal/logging"
)

// ExecClient drives the git binary.
type ExecClient struct {
	binary   string
	executor CommandExecutor
	logger   *slog.Logger
}

// NewExecClient builds a client that runs binary through executor.
func NewExecClient(binary string, executor CommandExecutor, logger *slog.Logger) *ExecClient {
	if binary == "" {
		binary = "git"
	}
	if executor == nil {
		executor = NewExecExecutor()
	}
	return &ExecClient{
		binary:   binary,
		executor: executor,
		logger:   logging.NewComponentLogger(logger, "git"),
	}
}

// Init runs `git init .` inside dir.
func (c *ExecClient) Init(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "init", ".")
}

// Clone runs `git clone <remote> <target>` inside the parent of target.
func (c *ExecClient) Clone(ctx context.Context, remote, target string) error {
	return c.run(ctx, filepath.Dir(target), "clone", remote, target)
}

func (c *ExecClient) run(ctx context.Context, dir string, args ...string) error {
	c.logger.Debug("running git",
		logging.String("binary", c.binary),
		logging.Path(dir),
		logging.Any("args", args),
	)
	output, err := c.executor.Run(ctx, dir, c.binary, args...)
	if err != nil {
		return newGitError(args[0], args[1:], dir, err, output)
	}
	return nil
}
