package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsCoverEveryKey(t *testing.T) {
	keys := []string{
		KeyBaseDir, KeyPublicRepoDir, KeyPrivateRepoDir, KeyContentDir,
		KeyBookmarkSubPath, KeyTagSubPath, KeyMsgSubPath, KeyHTMLSubPath,
		KeyRemotePublicRepo, KeyRemotePrivateRepo, KeyRemoteContentRepo,
		KeyGetContent, KeyContentCacheSizeMB, KeyContentAsRepo, KeySaveContentToRepo,
		KeyUserName, KeyUserEmail, KeyMachineName,
		KeyFavoriteColor, KeyUnladenSwallowGuess,
		KeyGitBackend, KeyGitBinary, KeyLogLevel, KeyLogFormat,
	}
	doc := Defaults()
	if len(doc.Keys) != len(keys) {
		t.Fatalf("template defines %d keys, expected %d: %v", len(doc.Keys), len(keys), doc.Keys)
	}
	for _, key := range keys {
		if _, ok := doc.Get(key); !ok {
			t.Fatalf("key %s missing from example template", key)
		}
	}
}

func TestDefaultTypes(t *testing.T) {
	if Default(KeyContentCacheSizeMB).Kind() != KindInt {
		t.Fatalf("expected integer cache size, got %s", Default(KeyContentCacheSizeMB).Kind())
	}
	if Default(KeyGetContent).Kind() != KindBool {
		t.Fatalf("expected boolean GET_CONTENT")
	}
	if !Default(KeyRemotePublicRepo).IsNull() {
		t.Fatalf("expected null public remote")
	}
	if !Default("NOT_A_KEY").IsNull() {
		t.Fatalf("expected unknown key to default to null")
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	doc := Defaults()
	doc.Values[KeyUserName] = String("mutated")
	doc.Keys[0] = "MUTATED"
	if v := Default(KeyUserName); v == String("mutated") {
		t.Fatal("Defaults must not expose the embedded document")
	}
	if Defaults().Keys[0] == "MUTATED" {
		t.Fatal("Defaults keys must be copied")
	}
}

func TestEnsureExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "example_settings.conf")
	created, err := EnsureExample(path)
	if err != nil {
		t.Fatalf("EnsureExample: %v", err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(Example()) {
		t.Fatal("written example differs from embedded content")
	}

	if err := os.WriteFile(path, []byte("A = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = EnsureExample(path)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("existing template must not be overwritten")
	}
}
