package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"gitmarks/internal/config"
	"gitmarks/internal/logging"
)

type commandContext struct {
	configFlag   *string
	templateFlag *string

	configOnce   sync.Once
	config       *config.Config
	resolvedPath string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, templateFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		templateFlag: templateFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolved, exists, err := config.Load(c.flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.resolvedPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func (c *commandContext) configPath() (string, error) {
	if path := c.flagValue(c.configFlag); path != "" {
		return config.ExpandPath(path)
	}
	path, err := config.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("determine default settings path: %w", err)
	}
	return path, nil
}

func (c *commandContext) templatePath() (string, error) {
	if path := c.flagValue(c.templateFlag); path != "" {
		return config.ExpandPath(path)
	}
	path, err := config.DefaultTemplatePath()
	if err != nil {
		return "", fmt.Errorf("determine default template path: %w", err)
	}
	return path, nil
}

// logger builds a logger from the loaded settings, or from the embedded
// defaults when the command skipped loading.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg := c.config
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return logging.NewFromConfig(cfg, w)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
