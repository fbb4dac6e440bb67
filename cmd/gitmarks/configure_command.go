package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitmarks/internal/prompt"
	"gitmarks/internal/setup"
)

func newConfigureCommand(ctx *commandContext) *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:         "configure",
		Short:       "Answer the setup questions, write settings, and bootstrap the repositories",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			prompter, closeFn, err := newPrompter(cmd.InOrStdin(), out, nonInteractive)
			if err != nil {
				return err
			}
			defer closeFn()

			runner, err := newRunner(ctx, cmd, prompter)
			if err != nil {
				return err
			}

			report, err := runner.Configure(cmd.Context())
			if report != nil && len(report.Results) > 0 {
				fmt.Fprintln(out, renderResults(report.Results))
			}
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					return errors.New("setup aborted")
				}
				return err
			}
			if report.Merge != nil {
				fmt.Fprintf(out, "Settings written to %s\n", report.Merge.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Accept every default without prompting")
	return cmd
}

func newPrompter(in io.Reader, out io.Writer, nonInteractive bool) (*prompt.Prompter, func(), error) {
	if nonInteractive {
		return prompt.NonInteractive(out), func() {}, nil
	}
	var reader prompt.LineReader
	if file, ok := in.(*os.File); ok {
		lr, err := prompt.NewLineReader(file, out)
		if err != nil {
			return nil, nil, fmt.Errorf("open terminal: %w", err)
		}
		reader = lr
	} else {
		reader = prompt.NewPlainReader(in, out)
	}
	return prompt.New(reader, out), func() { _ = reader.Close() }, nil
}

func newRunner(ctx *commandContext, cmd *cobra.Command, prompter *prompt.Prompter) (*setup.Runner, error) {
	configPath, err := ctx.configPath()
	if err != nil {
		return nil, err
	}
	templatePath, err := ctx.templatePath()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return setup.NewRunner(setup.Options{
		ConfigPath:   configPath,
		TemplatePath: templatePath,
		Prompter:     prompter,
		Out:          cmd.OutOrStdout(),
		Logger:       logger,
	})
}
