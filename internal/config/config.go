package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitmarks/internal/settings"
)

// Paths contains the base directory and the per-role repository folders.
type Paths struct {
	BaseDir        string
	PublicRepoDir  string
	PrivateRepoDir string
	ContentDir     string
}

// Layout names the folders created inside each repository.
type Layout struct {
	BookmarkSubPath string
	TagSubPath      string
	MsgSubPath      string
	HTMLSubPath     string
}

// Remotes holds clone sources. An empty string means no remote is configured.
type Remotes struct {
	Public  string
	Private string
	Content string
}

// Content contains page content caching options.
type Content struct {
	GetContent  bool
	CacheSizeMB int
	AsRepo      bool
	SaveToRepo  bool
}

// User identifies the person and machine publishing bookmarks.
type User struct {
	Name        string
	Email       string
	MachineName string
}

// Trivia holds answers that have no effect on behaviour.
type Trivia struct {
	FavoriteColor       string
	UnladenSwallowGuess string
}

// Git selects the version-control client.
type Git struct {
	Backend string
	Binary  string
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string
	Format string
}

// Config encapsulates all configuration values for gitmarks.
//
// Configuration sections:
//   - Paths: base directory and repository folder names
//   - Layout: bookmark/tag/message folders inside each repository
//   - Remotes: optional clone sources per repository
//   - Content: page content caching
//   - User: identity recorded alongside bookmarks
//   - Trivia: the pointless questions
//   - Git: exec or embedded client
//   - Logging: log format and level
type Config struct {
	Paths   Paths
	Layout  Layout
	Remotes Remotes
	Content Content
	User    User
	Trivia  Trivia
	Git     Git
	Logging Logging
}

const (
	configDirName    = "gitmarks"
	settingsFileName = "settings.conf"
	templateFileName = "example_settings.conf"
)

// DefaultConfigDir returns the directory holding the settings and template files.
func DefaultConfigDir() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return expandPath(filepath.Join(base, configDirName))
	}
	return expandPath("~/.config/" + configDirName)
}

// DefaultConfigPath returns the absolute path to the default settings file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// DefaultTemplatePath returns the absolute path of the example settings file
// used as the merge template.
func DefaultTemplatePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, templateFileName), nil
}

// Load locates, parses, and validates a settings file. Keys missing from the
// file keep their template defaults. The returned config has all path fields
// expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		doc, err := settings.ParseFile(resolvedPath)
		if err != nil {
			return nil, "", false, err
		}
		if err := cfg.apply(resolvedPath, doc); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

// RepoPath resolves a repository folder against the base directory. An
// absolute folder is used as is.
func (c *Config) RepoPath(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.Paths.BaseDir, dir)
}

// BookmarkSubdirs returns the folders every bookmark repository must contain,
// in creation order.
func (c *Config) BookmarkSubdirs() []string {
	return []string{c.Layout.BookmarkSubPath, c.Layout.TagSubPath, c.Layout.MsgSubPath}
}

// GitBinary returns the git executable name used by the exec backend.
func (c *Config) GitBinary() string {
	if strings.TrimSpace(c.Git.Binary) == "" {
		return defaultGitBinary
	}
	return c.Git.Binary
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the example settings file to path, creating parent
// directories as needed.
func CreateSample(path string) error {
	return settings.WriteExample(path)
}
