package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gitmarks/internal/config"
	"gitmarks/internal/deps"
	"gitmarks/internal/preflight"
	"gitmarks/internal/repo"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show repository, directory, and dependency status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			printLines(out, renderSectionHeader("Settings", colorize))
			if ctx.configExists {
				fmt.Fprintln(out, renderStatusLine("Settings file", statusOK, ctx.resolvedPath, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Settings file", statusWarn, ctx.resolvedPath+" (not found; run `gitmarks configure`)", colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Git backend", statusInfo, cfg.Git.Backend, colorize))
			fmt.Fprintln(out)

			printLines(out, renderSectionHeader("Repositories", colorize))
			fmt.Fprintln(out, renderRoleStatuses(repo.Inspect(cfg)))
			fmt.Fprintln(out)

			printLines(out, renderSectionHeader("Directories", colorize))
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			fmt.Fprintln(out)

			printLines(out, renderSectionHeader("Dependencies", colorize))
			for _, status := range preflight.CheckSystemDeps(cfg) {
				kind, message := dependencyLine(status, cfg)
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}
			return nil
		},
	}
}

func renderRoleStatuses(statuses []repo.RoleStatus) string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		remote := s.Plan.Remote
		if remote == "" {
			remote = "-"
		}
		missing := "-"
		if len(s.MissingSubdirs) > 0 {
			missing = strings.Join(s.MissingSubdirs, ", ")
		}
		rows = append(rows, []string{
			roleLabel(s.Plan.Role),
			string(s.State),
			s.Plan.Path,
			remote,
			missing,
		})
	}
	return renderTable(
		[]string{"Repository", "State", "Path", "Remote", "Missing"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func dependencyLine(status deps.Status, cfg *config.Config) (statusKind, string) {
	if status.Available {
		message := status.Path
		if status.Version != "" {
			message = fmt.Sprintf("%s (%s)", status.Version, status.Path)
		}
		return statusOK, message
	}
	if status.Optional {
		return statusWarn, fmt.Sprintf("%s; optional with %s backend", status.Detail, cfg.Git.Backend)
	}
	return statusError, status.Detail
}

func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
