package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitmarks/internal/fileutil"
)

// Overrides maps configuration keys to the values supplied for one run.
type Overrides map[string]Value

// MergeResult summarizes a completed merge.
type MergeResult struct {
	Path      string
	Template  string
	Lines     int
	Rewritten []string
}

// MergeContent applies overrides to settings content line by line. Lines that
// are not assignments, and assignments whose key has no override, are kept
// byte for byte. It returns the merged content and the rewritten keys in the
// order they were encountered.
func MergeContent(content []byte, overrides Overrides) ([]byte, []string, error) {
	src := string(content)
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	var rewritten []string

	for _, line := range lines {
		body, cr := strings.CutSuffix(line, "\r")
		assign, ok := SplitAssignment(body)
		if !ok {
			out = append(out, line)
			continue
		}
		value, ok := overrides[assign.Key]
		if !ok {
			out = append(out, line)
			continue
		}
		next := assign.Render(value.Literal())
		if cr {
			next += "\r"
		}
		out = append(out, next)
		rewritten = append(rewritten, assign.Key)
	}

	merged := strings.Join(out, "\n")
	if got, want := strings.Count(merged, "\n"), strings.Count(src, "\n"); len(out) != len(lines) || got != want {
		return nil, nil, &Error{Err: fmt.Errorf("merged line count %d does not match template line count %d", got+1, want+1)}
	}
	return []byte(merged), rewritten, nil
}

// Merge makes destPath an exact copy of templatePath and then rewrites the
// assignments named in overrides. When the template does not exist but the
// destination does, the destination is merged in place. Both missing is an
// *Error.
func Merge(templatePath, destPath string, overrides Overrides) (*MergeResult, error) {
	if strings.TrimSpace(destPath) == "" {
		return nil, newError("", 0, "destination path is required")
	}

	haveTemplate, err := isFile(templatePath)
	if err != nil {
		return nil, err
	}
	haveDest, err := isFile(destPath)
	if err != nil {
		return nil, err
	}

	source := templatePath
	switch {
	case haveTemplate:
		if !samePath(templatePath, destPath) {
			if dir := filepath.Dir(destPath); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("create settings directory: %w", err)
				}
			}
			if err := fileutil.CopyFile(templatePath, destPath); err != nil {
				return nil, fmt.Errorf("copy template %s to %s: %w", templatePath, destPath, err)
			}
		}
	case haveDest:
		source = destPath
	default:
		return nil, newError(destPath, 0, "no template at %q and no existing settings file", templatePath)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return nil, fmt.Errorf("stat settings: %w", err)
	}
	content, err := os.ReadFile(destPath)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	merged, rewritten, err := MergeContent(content, overrides)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) {
			serr.Path = destPath
		}
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(destPath, merged, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write settings: %w", err)
	}

	return &MergeResult{
		Path:      destPath,
		Template:  source,
		Lines:     strings.Count(string(merged), "\n") + 1,
		Rewritten: rewritten,
	}, nil
}

func isFile(path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, newError(path, 0, "is a directory")
	}
	return true, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
