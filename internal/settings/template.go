package settings

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// Recognized configuration keys.
const (
	KeyBaseDir             = "GITMARK_BASE_DIR"
	KeyPublicRepoDir       = "PUBLIC_GITMARK_REPO_DIR"
	KeyPrivateRepoDir      = "PRIVATE_GITMARK_REPO_DIR"
	KeyContentDir          = "CONTENT_GITMARK_DIR"
	KeyBookmarkSubPath     = "BOOKMARK_SUB_PATH"
	KeyTagSubPath          = "TAG_SUB_PATH"
	KeyMsgSubPath          = "MSG_SUB_PATH"
	KeyHTMLSubPath         = "HTML_SUB_PATH"
	KeyRemotePublicRepo    = "REMOTE_PUBLIC_REPO"
	KeyRemotePrivateRepo   = "REMOTE_PRIVATE_REPO"
	KeyRemoteContentRepo   = "REMOTE_CONTENT_REPO"
	KeyGetContent          = "GET_CONTENT"
	KeyContentCacheSizeMB  = "CONTENT_CACHE_SIZE_MB"
	KeyContentAsRepo       = "CONTENT_AS_REPO"
	KeySaveContentToRepo   = "SAVE_CONTENT_TO_REPO"
	KeyUserName            = "USER_NAME"
	KeyUserEmail           = "USER_EMAIL"
	KeyMachineName         = "MACHINE_NAME"
	KeyFavoriteColor       = "FAVORITE_COLOR"
	KeyUnladenSwallowGuess = "UNLADEN_SWALLOW_GUESS"
	KeyGitBackend          = "GIT_BACKEND"
	KeyGitBinary           = "GIT_BINARY"
	KeyLogLevel            = "LOG_LEVEL"
	KeyLogFormat           = "LOG_FORMAT"
)

//go:embed example_settings.conf
var exampleSettings []byte

var exampleDocument = mustParse(exampleSettings)

func mustParse(content []byte) *Document {
	doc, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("embedded example settings: %v", err))
	}
	return doc
}

// Example returns the embedded template content.
func Example() []byte {
	out := make([]byte, len(exampleSettings))
	copy(out, exampleSettings)
	return out
}

// Defaults returns the recognized keys and their template defaults.
func Defaults() *Document {
	doc := &Document{
		Keys:   append([]string(nil), exampleDocument.Keys...),
		Values: make(map[string]Value, len(exampleDocument.Values)),
	}
	for k, v := range exampleDocument.Values {
		doc.Values[k] = v
	}
	return doc
}

// Default returns the template default for key, or Null when the key is
// not recognized.
func Default(key string) Value {
	return exampleDocument.Values[key]
}

// WriteExample writes the embedded template to path, creating parent
// directories as needed.
func WriteExample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create template directory: %w", err)
		}
	}
	if err := os.WriteFile(path, exampleSettings, 0o644); err != nil {
		return fmt.Errorf("write example settings: %w", err)
	}
	return nil
}

// EnsureExample writes the embedded template to path unless a file already
// exists there. It reports whether the file was created.
func EnsureExample(path string) (bool, error) {
	exists, err := isFile(path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	return true, WriteExample(path)
}
