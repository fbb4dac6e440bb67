package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"gitmarks/internal/config"
	"gitmarks/internal/settings"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings utilities",
	}

	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the example settings template",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				target string
				err    error
			)
			if targetPath != "" {
				target, err = config.ExpandPath(targetPath)
			} else {
				target, err = ctx.templatePath()
			}
			if err != nil {
				return fmt.Errorf("resolve template path: %w", err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("template already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check template path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create example settings: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote example settings to %s\n", target)
			fmt.Fprintln(out, "Run `gitmarks configure` to answer the setup questions and create your settings file.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the template")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing template")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings path: %s\n", ctx.resolvedPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Settings file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Settings valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rows := [][]string{
				{settings.KeyBaseDir, cfg.Paths.BaseDir},
				{settings.KeyPublicRepoDir, cfg.Paths.PublicRepoDir},
				{settings.KeyPrivateRepoDir, cfg.Paths.PrivateRepoDir},
				{settings.KeyContentDir, cfg.Paths.ContentDir},
				{settings.KeyBookmarkSubPath, cfg.Layout.BookmarkSubPath},
				{settings.KeyTagSubPath, cfg.Layout.TagSubPath},
				{settings.KeyMsgSubPath, cfg.Layout.MsgSubPath},
				{settings.KeyHTMLSubPath, cfg.Layout.HTMLSubPath},
				{settings.KeyRemotePublicRepo, orNone(cfg.Remotes.Public)},
				{settings.KeyRemotePrivateRepo, orNone(cfg.Remotes.Private)},
				{settings.KeyRemoteContentRepo, orNone(cfg.Remotes.Content)},
				{settings.KeyGetContent, yesNo(cfg.Content.GetContent)},
				{settings.KeyContentCacheSizeMB, strconv.Itoa(cfg.Content.CacheSizeMB)},
				{settings.KeyContentAsRepo, yesNo(cfg.Content.AsRepo)},
				{settings.KeySaveContentToRepo, yesNo(cfg.Content.SaveToRepo)},
				{settings.KeyUserName, orNone(cfg.User.Name)},
				{settings.KeyUserEmail, orNone(cfg.User.Email)},
				{settings.KeyMachineName, orNone(cfg.User.MachineName)},
				{settings.KeyGitBackend, cfg.Git.Backend},
				{settings.KeyGitBinary, cfg.GitBinary()},
				{settings.KeyLogLevel, cfg.Logging.Level},
				{settings.KeyLogFormat, cfg.Logging.Format},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings path: %s\n", ctx.resolvedPath)
			fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
