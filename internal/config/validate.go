package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateContent(); err != nil {
		return err
	}
	if err := c.validateGit(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.BaseDir == "" {
		return errors.New("GITMARK_BASE_DIR must be set")
	}
	return ensureNonEmpty([]field{
		{"PUBLIC_GITMARK_REPO_DIR", c.Paths.PublicRepoDir},
		{"PRIVATE_GITMARK_REPO_DIR", c.Paths.PrivateRepoDir},
		{"CONTENT_GITMARK_DIR", c.Paths.ContentDir},
	})
}

func (c *Config) validateLayout() error {
	return ensureNonEmpty([]field{
		{"BOOKMARK_SUB_PATH", c.Layout.BookmarkSubPath},
		{"TAG_SUB_PATH", c.Layout.TagSubPath},
		{"MSG_SUB_PATH", c.Layout.MsgSubPath},
	})
}

func (c *Config) validateContent() error {
	if c.Content.CacheSizeMB < 0 {
		return errors.New("CONTENT_CACHE_SIZE_MB must be >= 0")
	}
	return nil
}

func (c *Config) validateGit() error {
	switch c.Git.Backend {
	case BackendExec, BackendEmbedded:
		return nil
	default:
		return fmt.Errorf("GIT_BACKEND must be %q or %q, got %q", BackendExec, BackendEmbedded, c.Git.Backend)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
}

type field struct {
	key   string
	value string
}

// ensureNonEmpty reports the first blank field in order.
func ensureNonEmpty(fields []field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s must be set", f.key)
		}
	}
	return nil
}
