package settings

import (
	"errors"
	"fmt"
)

// ErrSettings matches every *Error via errors.Is.
var ErrSettings = errors.New("settings error")

// Error reports a settings file that is missing, malformed, or failed the
// post-merge integrity check.
type Error struct {
	Path string
	Line int // 1-based; zero when the error is not tied to a line
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("settings %s:%d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("settings %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("settings: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrSettings }

func newError(path string, line int, format string, args ...any) *Error {
	return &Error{Path: path, Line: line, Err: fmt.Errorf(format, args...)}
}
