package repo

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandExecutor runs a prepared command and reports its combined output.
// Only the exit status decides success.
type CommandExecutor interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecExecutor delegates to os/exec.
type ExecExecutor struct{}

// NewExecExecutor returns the default executor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Run executes name with args in dir. The caller's working directory is not
// touched.
func (e *ExecExecutor) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()
	return output.String(), err
}
