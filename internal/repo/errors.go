package repo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitOperationFailed matches every GitError via errors.Is.
var ErrGitOperationFailed = errors.New("git operation failed")

// GitError describes a failed version-control operation.
type GitError struct {
	Operation string
	Args      []string
	Dir       string
	Err       error
	Output    string
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if e.Dir != "" {
		msg = fmt.Sprintf("%s in %s", msg, e.Dir)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GitError) Unwrap() error { return e.Err }

func (e *GitError) Is(target error) bool { return target == ErrGitOperationFailed }

func newGitError(operation string, args []string, dir string, err error, output string) *GitError {
	return &GitError{
		Operation: operation,
		Args:      append([]string(nil), args...),
		Dir:       dir,
		Err:       err,
		Output:    output,
	}
}
