package setup_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitmarks/internal/prompt"
	"gitmarks/internal/repo"
	"gitmarks/internal/settings"
	"gitmarks/internal/setup"
	"gitmarks/internal/testsupport"
)

type fixture struct {
	dir      string
	config   string
	template string
	baseDir  string
	git      *testsupport.GitStub
}

func newFixture(t *testing.T, opts ...testsupport.GitStubOption) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:      dir,
		config:   filepath.Join(dir, "settings.conf"),
		template: filepath.Join(dir, "example_settings.conf"),
		baseDir:  filepath.Join(dir, "marks"),
		git:      testsupport.NewGitStub(t, opts...),
	}
	f.git.OnPath(t)
	if err := settings.WriteExample(f.template); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return f
}

func (f *fixture) runner(t *testing.T, answers ...string) (*setup.Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	r, err := setup.NewRunner(setup.Options{
		ConfigPath:   f.config,
		TemplatePath: f.template,
		Prompter:     prompt.New(prompt.NewPlainReader(in, &out), &out),
		Out:          &out,
	})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	return r, &out
}

// answers for a full questionnaire plus the final confirmation.
func (f *fixture) answers(publicRemote, confirm string) []string {
	return []string{
		"y", f.baseDir, "", "", publicRemote, "", "", "blue-green", "", "", "", "", confirm,
	}
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Count(string(data), "\n")
}

func TestConfigureWritesSettingsAndBootstraps(t *testing.T) {
	f := newFixture(t)
	const remote = "https://example.com/public.git"
	r, out := f.runner(t, f.answers(remote, "y")...)

	report, err := r.Configure(context.Background())
	if err != nil {
		t.Fatalf("Configure: %v\n%s", err, out.String())
	}
	if report.RunID == "" {
		t.Fatal("expected run id")
	}
	if countLines(t, f.config) != countLines(t, f.template) {
		t.Fatal("merged settings must keep the template line count")
	}

	data, err := os.ReadFile(f.config)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	for _, want := range []string{
		"GITMARK_BASE_DIR = '" + f.baseDir + "'",
		"REMOTE_PUBLIC_REPO = '" + remote + "'",
		"REMOTE_PRIVATE_REPO = null",
		"FAVORITE_COLOR = 'blue-green' # user pref",
		"CONTENT_CACHE_SIZE_MB = 1024",
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("settings missing %q:\n%s", want, data)
		}
	}

	if report.Config == nil || report.Config.Paths.BaseDir != f.baseDir {
		t.Fatalf("expected reloaded config for %s, got %+v", f.baseDir, report.Config)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 role results, got %+v", report.Results)
	}
	if report.Results[0].Action != repo.ActionCloned {
		t.Fatalf("public should be cloned, got %s", report.Results[0].Action)
	}
	if f.git.Count(t, "clone") != 1 {
		t.Fatalf("expected one clone, got %d", f.git.Count(t, "clone"))
	}
	for _, sub := range []string{"bookmarks", "tags", "msgs"} {
		if _, err := os.Stat(filepath.Join(f.baseDir, "private", sub)); err != nil {
			t.Fatalf("expected private/%s: %v", sub, err)
		}
	}
	if !strings.Contains(out.String(), "Setup complete.") {
		t.Fatalf("expected completion message, got %q", out.String())
	}
}

func TestConfigureTwiceDoesNotCloneAgain(t *testing.T) {
	f := newFixture(t)
	const remote = "https://example.com/public.git"

	for i := 0; i < 2; i++ {
		r, out := f.runner(t, f.answers(remote, "y")...)
		if _, err := r.Configure(context.Background()); err != nil {
			t.Fatalf("run %d: %v\n%s", i+1, err, out.String())
		}
	}
	if got := f.git.Count(t, "clone"); got != 1 {
		t.Fatalf("expected a single clone across runs, got %d", got)
	}
}

func TestConfigureDeclinedAtStart(t *testing.T) {
	f := newFixture(t)
	r, _ := f.runner(t, "n")

	report, err := r.Configure(context.Background())
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if !report.Declined {
		t.Fatal("expected declined report")
	}
	if _, err := os.Stat(f.config); !os.IsNotExist(err) {
		t.Fatal("no settings file should be written")
	}
}

func TestConfigureNotConfirmed(t *testing.T) {
	f := newFixture(t)
	r, _ := f.runner(t, f.answers("", "n")...)

	_, err := r.Configure(context.Background())
	if !errors.Is(err, setup.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if _, err := os.Stat(f.config); !os.IsNotExist(err) {
		t.Fatal("no settings file should be written")
	}
	if _, err := os.Stat(f.baseDir); !os.IsNotExist(err) {
		t.Fatal("no directories should be created")
	}
}

func TestConfigureInvalidConfirmation(t *testing.T) {
	f := newFixture(t)
	r, _ := f.runner(t, f.answers("", "whatever")...)

	_, err := r.Configure(context.Background())
	if !errors.Is(err, prompt.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := os.Stat(f.config); !os.IsNotExist(err) {
		t.Fatal("no settings file should be written")
	}
}

func TestConfigureCloneFailureStopsLaterRoles(t *testing.T) {
	f := newFixture(t, testsupport.FailGit("clone", 128, "fatal: repository not found"))
	r, _ := f.runner(t, f.answers("https://example.com/missing.git", "y")...)

	report, err := r.Configure(context.Background())
	if !errors.Is(err, repo.ErrGitOperationFailed) {
		t.Fatalf("expected git failure, got %v", err)
	}
	if len(report.Results) != 0 {
		t.Fatalf("no role should complete, got %+v", report.Results)
	}
	if _, err := os.Stat(filepath.Join(f.baseDir, "private")); !os.IsNotExist(err) {
		t.Fatal("private role must not run after the public clone fails")
	}
	if _, err := os.Stat(f.config); err != nil {
		t.Fatalf("settings are kept even when bootstrap fails: %v", err)
	}
}

func TestConfigureWritesTemplateWhenMissing(t *testing.T) {
	f := newFixture(t)
	if err := os.Remove(f.template); err != nil {
		t.Fatalf("remove template: %v", err)
	}
	r, out := f.runner(t, f.answers("", "y")...)

	if _, err := r.Configure(context.Background()); err != nil {
		t.Fatalf("Configure: %v\n%s", err, out.String())
	}
	if _, err := os.Stat(f.template); err != nil {
		t.Fatalf("expected template to be created: %v", err)
	}
}

func TestBootstrapRequiresSettingsFile(t *testing.T) {
	f := newFixture(t)
	r, _ := f.runner(t)

	_, err := r.Bootstrap(context.Background())
	if !errors.Is(err, settings.ErrSettings) {
		t.Fatalf("expected settings error, got %v", err)
	}
}

func TestBootstrapFromExistingSettings(t *testing.T) {
	f := newFixture(t)
	overrides := settings.Overrides{settings.KeyBaseDir: settings.String(f.baseDir)}
	if _, err := settings.Merge(f.template, f.config, overrides); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	r, _ := f.runner(t)

	report, err := r.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if f.git.Count(t, "clone") != 0 {
		t.Fatal("no remotes configured, no clone expected")
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if !repo.IsRepository(filepath.Join(f.baseDir, "content")) {
		t.Fatal("content directory should be initialized")
	}
}

func TestBootstrapStopsWhenBaseDirectoryCannotBeCreated(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(f.dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	overrides := settings.Overrides{settings.KeyBaseDir: settings.String(filepath.Join(blocker, "marks"))}
	if _, err := settings.Merge(f.template, f.config, overrides); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	r, _ := f.runner(t)

	report, err := r.Bootstrap(context.Background())
	if err == nil || !strings.Contains(err.Error(), "preflight") {
		t.Fatalf("expected preflight failure, got %v", err)
	}
	if len(report.Results) != 0 {
		t.Fatalf("no role should run, got %+v", report.Results)
	}
	if f.git.Count(t, "init")+f.git.Count(t, "clone") != 0 {
		t.Fatal("git must not run when preflight fails")
	}
}
