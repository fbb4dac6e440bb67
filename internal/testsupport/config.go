package testsupport

import (
	"path/filepath"
	"testing"

	"gitmarks/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose base directory lives in a unique temp
// directory. The base directory itself is not created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BaseDir = filepath.Join(root, "gitmarks")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: root,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPublicRemote sets the public repository remote.
func WithPublicRemote(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Remotes.Public = url
	}
}

// WithPrivateRemote sets the private repository remote.
func WithPrivateRemote(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Remotes.Private = url
	}
}

// WithContentAsRepo enables the content repository subdirectories.
func WithContentAsRepo() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Content.AsRepo = true
		b.cfg.Content.SaveToRepo = true
	}
}

// WithGitBinary points the exec backend at binary.
func WithGitBinary(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Git.Backend = config.BackendExec
		b.cfg.Git.Binary = binary
	}
}

// WithEmbeddedGit selects the go-git backend.
func WithEmbeddedGit() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Git.Backend = config.BackendEmbedded
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.BaseDir)
}
