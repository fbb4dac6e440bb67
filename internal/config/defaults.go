package config

import (
	"fmt"

	"gitmarks/internal/settings"
)

const (
	defaultGitBackend = BackendExec
	defaultGitBinary  = "git"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Git backends.
const (
	BackendExec     = "exec"
	BackendEmbedded = "embedded"
)

// Default returns a Config populated from the embedded example settings.
func Default() Config {
	var cfg Config
	if err := cfg.apply("", settings.Defaults()); err != nil {
		panic(fmt.Sprintf("embedded defaults: %v", err))
	}
	return cfg
}
