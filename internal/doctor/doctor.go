package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/hooks"
	"github.com/raphi011/hooked/internal/log"
	"github.com/raphi011/hooked/internal/output"
)

// Options configure a doctor run.
type Options struct {
	Config   *config.Config
	Registry *hooks.Registry
	HooksDir string
	Binary   string // command installed scripts run
	Fix      bool
}

// Run checks the configuration and the installed scripts, prints a report
// to w and, with opts.Fix, repairs what it can. It returns the issues that
// remain.
func Run(ctx context.Context, w io.Writer, opts Options) ([]Issue, error) {
	if opts.Config == nil || opts.Registry == nil {
		return nil, errors.New("doctor: config and registry are required")
	}
	log.FromContext(ctx).Debug("doctor", "hooksDir", opts.HooksDir, "fix", opts.Fix)

	var stats Stats
	var allIssues []Issue

	fmt.Fprintln(w, "Checking configuration...")
	configIssues, actions := checkConfig(opts.Config, opts.Registry)
	allIssues = append(allIssues, configIssues...)
	stats.Actions = actions
	stats.ActionIssues = len(configIssues)

	fmt.Fprintln(w, "Checking installed hooks...")
	installIssues, expected := checkInstall(opts.Config, opts.HooksDir)
	allIssues = append(allIssues, installIssues...)
	stats.Hooks = expected
	stats.InstallIssues = len(installIssues)

	printSummary(w, stats)

	if len(allIssues) == 0 {
		fmt.Fprintf(w, "\n%s No issues found\n", output.Passed(output.SymbolPassed))
		return nil, nil
	}

	fmt.Fprintf(w, "\nFound %d issues:\n", len(allIssues))
	printIssuesByCategory(w, allIssues)

	if opts.Fix {
		fmt.Fprintln(w)
		return fixAllIssues(w, allIssues, opts), nil
	}

	for _, issue := range allIssues {
		if issue.Fixable() {
			fmt.Fprintln(w, "\nRun 'hooked doctor --fix' to repair.")
			break
		}
	}
	return allIssues, nil
}

func printSummary(w io.Writer, stats Stats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %d actions checked\n", output.Passed(output.SymbolPassed), stats.Actions)
	if stats.ActionIssues > 0 {
		fmt.Fprintf(w, "  %s %d configuration issues\n", output.Failed(output.SymbolFailed), stats.ActionIssues)
	}
	fmt.Fprintf(w, "  %s %d hooks expected to be installed\n", output.Passed(output.SymbolPassed), stats.Hooks)
	if stats.InstallIssues > 0 {
		fmt.Fprintf(w, "  %s %d installation issues\n", output.Failed(output.SymbolFailed), stats.InstallIssues)
	}
}

func printIssuesByCategory(w io.Writer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryConfig:  "Configuration issues",
		CategoryInstall: "Installation issues",
	}

	for _, cat := range []IssueCategory{CategoryConfig, CategoryInstall} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			fmt.Fprintf(w, "  • %s: %s\n", issue.Key, issue.Description)
			if issue.Hint != "" {
				fmt.Fprintf(w, "    %s\n", output.Muted(issue.Hint))
			}
		}
	}
}
