package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gitmarks/internal/repo"
)

func newBootstrapCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Clone or initialize the repositories from the existing settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner(ctx, cmd, nil)
			if err != nil {
				return err
			}
			report, err := runner.Bootstrap(cmd.Context())
			if report != nil && len(report.Results) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderResults(report.Results))
			}
			return err
		},
	}
}

func renderResults(results []repo.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			roleLabel(r.Role),
			string(r.Action),
			r.Path,
			strconv.Itoa(len(r.Subdirs)),
		})
	}
	return renderTable(
		[]string{"Repository", "Action", "Path", "Subdirs Created"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	)
}
