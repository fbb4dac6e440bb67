package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"gitmarks/internal/config"
	"gitmarks/internal/logging"
	"gitmarks/internal/preflight"
	"gitmarks/internal/prompt"
	"gitmarks/internal/repo"
	"gitmarks/internal/settings"
)

// ErrNotConfirmed is returned when the user declines to write settings and
// set up the repositories.
var ErrNotConfirmed = errors.New("settings must be stored before gitmarks can continue")

// ClientFactory builds the version-control client for a loaded config.
type ClientFactory func(cfg *config.Config, logger *slog.Logger) (repo.Client, error)

// Options configures a Runner.
type Options struct {
	ConfigPath   string
	TemplatePath string
	Prompter     *prompt.Prompter
	Out          io.Writer
	Logger       *slog.Logger
	NewClient    ClientFactory
}

// Report summarizes a run.
type Report struct {
	RunID      string
	Declined   bool
	Merge      *settings.MergeResult
	ConfigPath string
	Config     *config.Config
	Results    []repo.Result
}

// Runner sequences merge, reload, and bootstrap.
type Runner struct {
	configPath   string
	templatePath string
	prompter     *prompt.Prompter
	out          io.Writer
	base         *slog.Logger
	logger       *slog.Logger
	newClient    ClientFactory
}

// NewRunner validates opts and returns a runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.ConfigPath == "" {
		return nil, errors.New("config path is required")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	p := opts.Prompter
	if p == nil {
		p = prompt.NonInteractive(out)
	}
	factory := opts.NewClient
	if factory == nil {
		factory = repo.NewClient
	}
	base := opts.Logger
	if base == nil {
		base = logging.NewNop()
	}
	return &Runner{
		configPath:   opts.ConfigPath,
		templatePath: opts.TemplatePath,
		prompter:     p,
		out:          out,
		base:         base,
		logger:       logging.NewComponentLogger(base, "setup"),
		newClient:    factory,
	}, nil
}

func (r *Runner) begin(ctx context.Context) (context.Context, *Report, *slog.Logger) {
	report := &Report{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, report.RunID)
	return ctx, report, logging.WithContext(ctx, r.logger)
}

// Configure runs the questionnaire, asks for confirmation, merges the
// answers into the settings file, and bootstraps the repositories.
//
// A declined "Ready to start?" returns a report with Declined set and no
// error. Declining the final confirmation returns ErrNotConfirmed.
func (r *Runner) Configure(ctx context.Context) (*Report, error) {
	ctx, report, logger := r.begin(ctx)

	defaults, err := r.loadDefaults()
	if err != nil {
		return report, err
	}

	overrides, ok, err := NewQuestionnaire(r.prompter, r.out, defaults).Collect()
	if err != nil {
		return report, err
	}
	if !ok {
		report.Declined = true
		return report, nil
	}

	confirmed, err := r.prompter.YesNo("Set up local environment from above settings?", true)
	if err != nil {
		return report, err
	}
	if !confirmed {
		return report, ErrNotConfirmed
	}

	if err := r.ensureTemplate(); err != nil {
		return report, err
	}
	merge, err := settings.Merge(r.templatePath, r.configPath, overrides)
	if err != nil {
		return report, err
	}
	report.Merge = merge
	logger.Info("settings written",
		logging.Path(merge.Path),
		logging.Int("rewritten", len(merge.Rewritten)),
	)

	if err := r.bootstrap(ctx, report, logger); err != nil {
		return report, err
	}
	fmt.Fprintln(r.out, "Setup complete.")
	return report, nil
}

// Bootstrap loads the existing settings file and brings the repositories up
// without asking anything.
func (r *Runner) Bootstrap(ctx context.Context) (*Report, error) {
	ctx, report, logger := r.begin(ctx)
	if err := r.bootstrap(ctx, report, logger); err != nil {
		return report, err
	}
	return report, nil
}

func (r *Runner) bootstrap(ctx context.Context, report *Report, logger *slog.Logger) error {
	cfg, resolved, exists, err := config.Load(r.configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !exists {
		return &settings.Error{Path: resolved, Err: errors.New("file does not exist")}
	}
	report.ConfigPath = resolved
	report.Config = cfg

	if failed := preflight.Failed(preflight.RunAll(cfg)); len(failed) > 0 {
		for _, check := range failed {
			logger.Error("preflight check failed",
				logging.String("check", check.Name),
				logging.String("detail", check.Detail),
			)
		}
		return fmt.Errorf("preflight: %s: %s", failed[0].Name, failed[0].Detail)
	}
	if err := preflight.RequireGit(cfg); err != nil {
		return err
	}
	runLogger := logging.WithContext(ctx, r.base)
	client, err := r.newClient(cfg, runLogger)
	if err != nil {
		return err
	}

	results, err := repo.NewBootstrapper(client, runLogger).Run(ctx, cfg)
	report.Results = results
	if err != nil {
		logger.Error("bootstrap failed",
			logging.Error(err),
			logging.Int("roles_completed", len(results)),
		)
		return err
	}
	return nil
}

// loadDefaults returns the values offered by the questionnaire: the template
// on disk when present, else the existing settings file, else the embedded
// example.
func (r *Runner) loadDefaults() (*settings.Document, error) {
	for _, path := range []string{r.templatePath, r.configPath} {
		if path == "" || !fileExists(path) {
			continue
		}
		return settings.ParseFile(path)
	}
	return settings.Defaults(), nil
}

// ensureTemplate writes the embedded example when neither a template nor a
// settings file exists yet.
func (r *Runner) ensureTemplate() error {
	if r.templatePath == "" || fileExists(r.configPath) {
		return nil
	}
	created, err := settings.EnsureExample(r.templatePath)
	if err != nil {
		return err
	}
	if created {
		r.logger.Info("example settings written", logging.Path(r.templatePath))
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
