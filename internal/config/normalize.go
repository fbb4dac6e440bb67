package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLayout()
	c.normalizeRemotes()
	c.normalizeGit()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.BaseDir, err = expandPath(strings.TrimSpace(c.Paths.BaseDir)); err != nil {
		return fmt.Errorf("GITMARK_BASE_DIR: %w", err)
	}
	c.Paths.PublicRepoDir = strings.TrimSpace(c.Paths.PublicRepoDir)
	c.Paths.PrivateRepoDir = strings.TrimSpace(c.Paths.PrivateRepoDir)
	c.Paths.ContentDir = strings.TrimSpace(c.Paths.ContentDir)
	return nil
}

func (c *Config) normalizeLayout() {
	c.Layout.BookmarkSubPath = strings.TrimSpace(c.Layout.BookmarkSubPath)
	c.Layout.TagSubPath = strings.TrimSpace(c.Layout.TagSubPath)
	c.Layout.MsgSubPath = strings.TrimSpace(c.Layout.MsgSubPath)
	c.Layout.HTMLSubPath = strings.TrimSpace(c.Layout.HTMLSubPath)
}

func (c *Config) normalizeRemotes() {
	c.Remotes.Public = strings.TrimSpace(c.Remotes.Public)
	c.Remotes.Private = strings.TrimSpace(c.Remotes.Private)
	c.Remotes.Content = strings.TrimSpace(c.Remotes.Content)
}

func (c *Config) normalizeGit() {
	c.Git.Backend = strings.ToLower(strings.TrimSpace(c.Git.Backend))
	if c.Git.Backend == "" {
		c.Git.Backend = defaultGitBackend
	}
	c.Git.Binary = strings.TrimSpace(c.Git.Binary)
	if c.Git.Binary == "" {
		c.Git.Binary = defaultGitBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
