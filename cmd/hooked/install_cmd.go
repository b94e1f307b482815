package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/install"
	"github.com/raphi011/hooked/internal/output"
)

func newInstallCmd() *cobra.Command {
	var (
		force       bool
		onlyEnabled bool
		binary      string
	)

	cmd := &cobra.Command{
		Use:       "install [hook...]",
		Short:     "Install hook scripts into the repository",
		GroupID:   GroupSetup,
		ValidArgs: githook.Concrete(),
		Args:      cobra.OnlyValidArgs,
		Long: `Install scripts into the git hooks directory that run "hooked hook <name>".

Without arguments all git hooks are installed. Existing scripts not written
by hooked are kept unless --force is given.`,
		Example: `  hooked install                  # Install all hooks
  hooked install pre-commit       # Install a single hook
  hooked install --only-enabled   # Install hooks enabled in the config
  hooked install -f               # Replace existing hook scripts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			dir, err := repo.HooksDir(ctx)
			if err != nil {
				return err
			}

			names := selectHooks(config.FromContext(ctx), args, onlyEnabled)
			results, err := install.Install(dir, names, install.Options{Binary: binary, Force: force})
			printInstallResults(output.FromContext(ctx), results)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace hook scripts not written by hooked")
	cmd.Flags().BoolVar(&onlyEnabled, "only-enabled", false, "Only install hooks enabled in the config")
	cmd.Flags().StringVar(&binary, "binary", "hooked", "Command the hook scripts run")

	return cmd
}

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "uninstall [hook...]",
		Short:     "Remove hook scripts installed by hooked",
		GroupID:   GroupSetup,
		ValidArgs: githook.Concrete(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			dir, err := repo.HooksDir(ctx)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = githook.Concrete()
			}
			results, err := install.Uninstall(dir, names)
			printInstallResults(output.FromContext(ctx), results)
			return err
		},
	}
	return cmd
}

// selectHooks returns the hooks to install: the given names, or all
// concrete hooks, optionally limited to enabled ones. A virtual hook counts
// as enabling its targets.
func selectHooks(cfg *config.Config, names []string, onlyEnabled bool) []string {
	if len(names) == 0 {
		names = githook.Concrete()
	}
	if !onlyEnabled {
		return names
	}
	return slices.DeleteFunc(slices.Clone(names), func(name string) bool {
		if cfg.IsHookEnabled(name) {
			return false
		}
		for _, v := range githook.VirtualHooksFor(name) {
			if cfg.IsHookEnabled(v) {
				return false
			}
		}
		return true
	})
}

func printInstallResults(console *output.Console, results []install.Result) {
	for _, r := range results {
		switch r.Status {
		case install.StatusSkipped:
			console.Write(fmt.Sprintf("%s %s %s", output.Skipped(output.SymbolSkipped), r.Hook, output.Muted("(existing script kept, use --force)")))
		default:
			console.Write(fmt.Sprintf("%s %s %s", output.Passed(output.SymbolPassed), r.Hook, output.Muted(string(r.Status))))
		}
	}
}
