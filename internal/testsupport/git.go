package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GitInvocation is one recorded call to the stub git binary.
type GitInvocation struct {
	Dir  string
	Args []string
}

// GitStub is a shell script that stands in for git. It records every
// invocation, creates .git on init and clone, and can be told to fail.
type GitStub struct {
	Path    string
	logPath string
}

// GitStubOption customizes the generated script.
type GitStubOption func(*gitStubScript)

type gitStubScript struct {
	failOp   string
	exitCode int
	stderr   string
}

// FailGit makes the stub exit with code when called with op.
func FailGit(op string, code int, stderr string) GitStubOption {
	return func(s *gitStubScript) {
		s.failOp = op
		s.exitCode = code
		s.stderr = stderr
	}
}

// NewGitStub writes a stub git executable into a temp directory.
func NewGitStub(t testing.TB, opts ...GitStubOption) *GitStub {
	t.Helper()

	var script gitStubScript
	for _, opt := range opts {
		opt(&script)
	}

	dir := t.TempDir()
	stub := &GitStub{
		Path:    filepath.Join(dir, "git"),
		logPath: filepath.Join(dir, "invocations.log"),
	}

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "printf '%%s\\t%%s\\n' \"$(pwd -P)\" \"$*\" >> '%s'\n", stub.logPath)
	if script.failOp != "" {
		fmt.Fprintf(&b, "if [ \"$1\" = '%s' ]; then\n", script.failOp)
		if script.stderr != "" {
			fmt.Fprintf(&b, "  echo '%s' >&2\n", script.stderr)
		}
		fmt.Fprintf(&b, "  exit %d\nfi\n", script.exitCode)
	}
	b.WriteString("case \"$1\" in\n")
	b.WriteString("  init) mkdir -p \"${2:-.}/.git\" ;;\n")
	b.WriteString("  clone) mkdir -p \"$3/.git\" ;;\n")
	b.WriteString("esac\nexit 0\n")

	if err := os.WriteFile(stub.Path, []byte(b.String()), 0o755); err != nil {
		t.Fatalf("write git stub: %v", err)
	}
	return stub
}

// OnPath prepends the stub directory to PATH for the rest of the test.
func (s *GitStub) OnPath(t testing.TB) {
	t.Helper()
	dir := filepath.Dir(s.Path)
	if tt, ok := t.(*testing.T); ok {
		tt.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
		return
	}
	oldPath := os.Getenv("PATH")
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+oldPath); err != nil {
		t.Fatalf("set PATH: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Setenv("PATH", oldPath)
	})
}

// Invocations returns every recorded call in order.
func (s *GitStub) Invocations(t testing.TB) []GitInvocation {
	t.Helper()
	data, err := os.ReadFile(s.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read git stub log: %v", err)
	}
	var calls []GitInvocation
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		dir, args, _ := strings.Cut(line, "\t")
		calls = append(calls, GitInvocation{Dir: dir, Args: strings.Fields(args)})
	}
	return calls
}

// Count returns how many recorded calls used op as the subcommand.
func (s *GitStub) Count(t testing.TB, op string) int {
	t.Helper()
	n := 0
	for _, call := range s.Invocations(t) {
		if len(call.Args) > 0 && call.Args[0] == op {
			n++
		}
	}
	return n
}
