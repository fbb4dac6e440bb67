package repo

import (
	"os"
	"path/filepath"
)

const metadataDir = ".git"

// IsRepository reports whether path holds a working copy, judged solely by
// the presence of a .git directory. Nothing is cached.
func IsRepository(path string) bool {
	info, err := os.Stat(filepath.Join(path, metadataDir))
	return err == nil && info.IsDir()
}
