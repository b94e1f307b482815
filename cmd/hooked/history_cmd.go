package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/history"
	"github.com/raphi011/hooked/internal/output"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		hook  string
	)

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recent hook runs",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Show recent hook runs recorded by the history plugin.

Enable recording in hooked.toml:

  [[config.plugins]]
  plugin = "history"`,
		Example: `  hooked history               # Last 10 runs
  hooked history -n 50         # Last 50 runs
  hooked history --hook pre-push`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if hook != "" {
				if err := githook.Validate(hook); err != nil {
					return err
				}
			}
			repo, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			gitDir, err := repo.GitDir(ctx)
			if err != nil {
				return err
			}
			h, err := history.Load(history.Path(gitDir))
			if err != nil {
				return err
			}

			console := output.FromContext(ctx)
			entries := h.Last(limit, hook)
			if len(entries) == 0 {
				console.Write(output.Muted("No hook runs recorded"))
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, historyRow(e))
			}
			console.Write(strings.TrimSuffix(output.RenderTable(historyHeaders, rows), "\n"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "number", "n", 10, "Number of runs to show (0 for all)")
	cmd.Flags().StringVar(&hook, "hook", "", "Only show runs of this hook")
	cmd.RegisterFlagCompletionFunc("hook", cobra.FixedCompletions(githook.Concrete(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

var historyHeaders = []string{"TIME", "HOOK", "BRANCH", "PASSED", "SKIPPED", "FAILED", "DURATION"}

// historyRow renders one run as a table row matching historyHeaders.
func historyRow(e history.Entry) []string {
	branch := e.Branch
	if branch == "" {
		branch = "-"
	}
	failed := "-"
	if !e.OK() {
		failed = output.Failed(strings.Join(e.Failed, ", "))
	}
	return []string{
		e.Time.Local().Format(time.DateTime),
		e.Hook,
		branch,
		strconv.Itoa(e.Passed),
		strconv.Itoa(e.Skipped),
		failed,
		e.Duration.Round(time.Millisecond).String(),
	}
}
