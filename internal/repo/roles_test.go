package repo_test

import (
	"path/filepath"
	"testing"

	"gitmarks/internal/repo"
	"gitmarks/internal/testsupport"
)

func TestPlansFollowConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithPublicRemote("https://example.com/public.git"),
	)
	cfg.Remotes.Content = "https://example.com/content.git"

	plans := repo.Plans(cfg)
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	for i, role := range repo.Roles() {
		if plans[i].Role != role {
			t.Fatalf("plan %d role = %s, want %s", i, plans[i].Role, role)
		}
	}

	public := plans[0]
	if public.Path != filepath.Join(cfg.Paths.BaseDir, "public") {
		t.Fatalf("unexpected public path %q", public.Path)
	}
	if !public.HasRemote() {
		t.Fatal("public plan should clone")
	}
	if plans[1].HasRemote() {
		t.Fatal("private plan should initialize locally")
	}
	if plans[2].HasRemote() {
		t.Fatal("content plan must never clone")
	}
	if len(plans[2].Subdirs) != 0 {
		t.Fatalf("content subdirs should be skipped, got %v", plans[2].Subdirs)
	}
}

func TestPlansContentAsRepoAddsSubdirs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithContentAsRepo())
	plans := repo.Plans(cfg)
	if got := plans[2].Subdirs; len(got) != 3 {
		t.Fatalf("expected content subdirs, got %v", got)
	}
}
