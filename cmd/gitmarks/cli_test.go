package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitmarks/internal/repo"
	"gitmarks/internal/settings"
	"gitmarks/internal/testsupport"
)

type cliEnv struct {
	home       string
	configPath string
	template   string
	baseDir    string
	git        *testsupport.GitStub
}

func setupCLITestEnv(t *testing.T) *cliEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	env := &cliEnv{
		home:       home,
		configPath: filepath.Join(home, ".config", "gitmarks", "settings.conf"),
		template:   filepath.Join(home, ".config", "gitmarks", "example_settings.conf"),
		baseDir:    filepath.Join(home, "gitmarks"),
		git:        testsupport.NewGitStub(t),
	}
	env.git.OnPath(t)
	return env
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s: %v", path, err)
	}
}

func TestConfigInitWritesTemplate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "init"}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, env.template)

	doc, err := settings.ParseFile(env.template)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if _, ok := doc.Get(settings.KeyBaseDir); !ok {
		t.Fatal("template missing base dir")
	}

	if _, _, err := runCLI(t, []string{"config", "init"}, ""); err == nil {
		t.Fatal("expected error when template exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigInitCustomPath(t *testing.T) {
	setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "example.conf")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err != nil {
		t.Fatalf("config init --path: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected template at %s: %v", target, err)
	}
}

func TestConfigureNonInteractive(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"configure", "--non-interactive"}, "")
	if err != nil {
		t.Fatalf("configure: %v\n%s", err, out)
	}
	requireContains(t, out, "Setup complete.")
	requireContains(t, out, "Settings written to "+env.configPath)
	requireContains(t, out, "initialized")

	if _, err := os.Stat(env.template); err != nil {
		t.Fatalf("expected template to be written: %v", err)
	}
	for _, role := range []string{"public", "private"} {
		requireDir(t, filepath.Join(env.baseDir, role, ".git"))
		requireDir(t, filepath.Join(env.baseDir, role, "bookmarks"))
	}
	requireDir(t, filepath.Join(env.baseDir, "content"))
	if env.git.Count(t, "clone") != 0 {
		t.Fatal("no remotes configured, clone must not run")
	}
}

func TestConfigureReadsAnswersFromInput(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.home, "marks")
	answers := []string{
		"y", base, "n", "", "https://example.com/public.git", "", "", "", "", "", "", "", "y",
	}

	out, _, err := runCLI(t, []string{"configure"}, strings.Join(answers, "\n")+"\n")
	if err != nil {
		t.Fatalf("configure: %v\n%s", err, out)
	}
	requireContains(t, out, "Ready to start?")
	requireContains(t, out, "cloned")

	data, err := os.ReadFile(env.configPath)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	requireContains(t, string(data), "GET_CONTENT = false")
	requireContains(t, string(data), "GITMARK_BASE_DIR = '"+base+"'")
	if env.git.Count(t, "clone") != 1 {
		t.Fatalf("expected one clone, got %d", env.git.Count(t, "clone"))
	}
}

func TestConfigureDeclined(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"configure"}, "n\n")
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	requireContains(t, out, "Goodbye! Share and Enjoy.")
	if _, err := os.Stat(env.configPath); !os.IsNotExist(err) {
		t.Fatalf("settings must not be written when declined: %v", err)
	}
}

func TestConfigureClosedInput(t *testing.T) {
	setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"configure"}, "")
	if err == nil || !strings.Contains(err.Error(), "aborted") {
		t.Fatalf("expected aborted error, got %v", err)
	}
}

func TestBootstrapRequiresSettings(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"bootstrap"}, "")
	if err == nil {
		t.Fatal("expected error without settings file")
	}
	requireContains(t, err.Error(), env.configPath)
}

func TestBootstrapUsesSettingsFile(t *testing.T) {
	env := setupCLITestEnv(t)
	configPath := filepath.Join(t.TempDir(), "settings.conf")
	base := filepath.Join(env.home, "elsewhere")
	content := "GITMARK_BASE_DIR = '" + base + "'\nCONTENT_AS_REPO = true\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	out, _, err := runCLI(t, []string{"--config", configPath, "bootstrap"}, "")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	requireContains(t, out, "Content")
	requireDir(t, filepath.Join(base, "content", "msgs"))

	out, _, err = runCLI(t, []string{"--config", configPath, "bootstrap"}, "")
	if err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	requireContains(t, out, "initialized")
	if env.git.Count(t, "init") != 6 {
		t.Fatalf("expected init for every role on both runs, got %d", env.git.Count(t, "init"))
	}
	if env.git.Count(t, "clone") != 0 {
		t.Fatal("no remotes configured, clone must not run")
	}
}

func TestStatusReportsMissingRepositories(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, "")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "== Repositories ==")
	requireContains(t, out, "Public")
	requireContains(t, out, "missing")
	requireContains(t, out, "not found; run `gitmarks configure`")
	requireContains(t, out, "== Dependencies ==")
	requireContains(t, out, "[OK]")
}

func TestConfigShowAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	configPath := filepath.Join(t.TempDir(), "settings.conf")
	if err := os.WriteFile(configPath, []byte("REMOTE_PRIVATE_REPO = 'git@example.com:me/private.git'\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	out, _, err := runCLI(t, []string{"-c", configPath, "config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "git@example.com:me/private.git")
	requireContains(t, out, env.baseDir)

	out, _, err = runCLI(t, []string{"-c", configPath, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Settings valid")
}

func TestConfigValidateRejectsMistypedValue(t *testing.T) {
	setupCLITestEnv(t)
	configPath := filepath.Join(t.TempDir(), "settings.conf")
	if err := os.WriteFile(configPath, []byte("GET_CONTENT = 'sometimes'\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	_, _, err := runCLI(t, []string{"-c", configPath, "config", "validate"}, "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "GET_CONTENT")
}

func TestRenderResultsRightAlignsCounts(t *testing.T) {
	out := renderResults([]repo.Result{
		{Role: repo.RolePublic, Action: repo.ActionInitialized, Path: "/m/public", Subdirs: []string{"bookmarks", "tags", "msgs"}},
		{Role: repo.RoleContent, Action: repo.ActionInitialized, Path: "/m/content"},
	})
	requireContains(t, out, "Subdirs Created")
	requireContains(t, out, "Public")
	requireContains(t, out, strings.Repeat(" ", 14)+"3 │")
	requireContains(t, out, strings.Repeat(" ", 14)+"0 │")
}
