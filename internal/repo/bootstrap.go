package repo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gitmarks/internal/config"
	"gitmarks/internal/logging"
)

// Action records what the bootstrapper did for a role.
type Action string

const (
	ActionCloned      Action = "cloned"
	ActionPresent     Action = "present"
	ActionInitialized Action = "initialized"
)

// Result summarizes a single role.
type Result struct {
	Role    Role
	Path    string
	Action  Action
	Subdirs []string // subdirectories created by this run
}

// Bootstrapper clones or initializes the bookmark repositories.
type Bootstrapper struct {
	client Client
	logger *slog.Logger
}

// NewBootstrapper wires a bootstrapper to client.
func NewBootstrapper(client Client, logger *slog.Logger) *Bootstrapper {
	return &Bootstrapper{
		client: client,
		logger: logging.NewComponentLogger(logger, "bootstrap"),
	}
}

// Run ensures the base directory exists and then processes every role in
// order. The first failure aborts the remaining roles; roles already
// completed are left in place and returned alongside the error.
func (b *Bootstrapper) Run(ctx context.Context, cfg *config.Config) ([]Result, error) {
	if err := b.ensureBaseDir(cfg.Paths.BaseDir); err != nil {
		return nil, err
	}

	plans := Plans(cfg)
	results := make([]Result, 0, len(plans))
	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := b.Bootstrap(ctx, plan)
		if err != nil {
			return results, fmt.Errorf("bootstrap %s repository: %w", plan.Role, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (b *Bootstrapper) ensureBaseDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("base directory not configured")
	}
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("base directory %s is not a directory", dir)
	case !os.IsNotExist(err):
		return fmt.Errorf("stat base directory: %w", err)
	}
	b.logger.Info("creating base directory", logging.Path(dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}
	return nil
}

// Bootstrap handles a single role.
func (b *Bootstrapper) Bootstrap(ctx context.Context, plan Plan) (Result, error) {
	logger := b.logger.With(
		logging.Role(string(plan.Role)),
		logging.Path(plan.Path),
	)
	result := Result{Role: plan.Role, Path: plan.Path}

	if plan.HasRemote() {
		if IsRepository(plan.Path) {
			logger.Info("repository already present")
			result.Action = ActionPresent
			return result, nil
		}
		logger.Info("cloning repository", logging.String("remote", plan.Remote))
		if err := ensureDir(filepath.Dir(plan.Path)); err != nil {
			return result, err
		}
		if err := b.client.Clone(ctx, plan.Remote, plan.Path); err != nil {
			return result, err
		}
		result.Action = ActionCloned
		return result, nil
	}

	if err := ensureDir(plan.Path); err != nil {
		return result, err
	}
	if err := b.client.Init(ctx, plan.Path); err != nil {
		return result, err
	}
	result.Action = ActionInitialized

	created, err := makeSubdirs(plan.Path, plan.Subdirs)
	result.Subdirs = created
	if err != nil {
		return result, err
	}
	logger.Info("repository initialized", logging.Int("subdirs_created", len(created)))
	return result, nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

// makeSubdirs creates each named folder under root and returns the ones that
// did not exist before.
func makeSubdirs(root string, names []string) ([]string, error) {
	var created []string
	for _, name := range names {
		if name == "" {
			continue
		}
		target := filepath.Join(root, name)
		if _, err := os.Stat(target); err == nil {
			continue
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return created, fmt.Errorf("create subdirectory %s: %w", target, err)
		}
		created = append(created, name)
	}
	return created, nil
}
