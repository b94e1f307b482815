package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/hooks"
	"github.com/raphi011/hooked/internal/log"
	"github.com/raphi011/hooked/internal/output"
)

// stdinHooks are the hooks git pipes data to.
var stdinHooks = map[string]bool{
	githook.PrePush:     true,
	githook.PostRewrite: true,
}

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook <name> [args...]",
		Short:   "Run the actions of a git hook",
		GroupID: GroupHooks,
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return githook.Concrete(), cobra.ShellCompDirectiveNoFileComp
		},
		Long: `Run the actions configured for a git hook.

This is what the installed hook scripts call. The remaining arguments are
the ones git passes to the hook, e.g. the message file for commit-msg.
Set HOOKED_SKIP_HOOKS=1 to skip all hooks.`,
		Example: `  hooked hook pre-commit
  hooked hook commit-msg .git/COMMIT_EDITMSG
  HOOKED_SKIP_HOOKS=1 git commit -m "wip"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd.Context(), args[0], args[1:])
		},
	}
	return cmd
}

// newHookShortcutCmds returns one command per git hook, so
// "hooked commit-msg <file>" works like "hooked hook commit-msg <file>".
func newHookShortcutCmds() []*cobra.Command {
	var cmds []*cobra.Command
	for _, name := range githook.Concrete() {
		argNames := githook.Arguments(name)
		use := name
		for _, a := range argNames {
			use += " [" + a + "]"
		}
		cmds = append(cmds, &cobra.Command{
			Use:     use,
			Short:   fmt.Sprintf("Run the %s hook", name),
			GroupID: GroupHooks,
			Args:    cobra.MaximumNArgs(len(argNames)),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runHook(cmd.Context(), name, args)
			},
		})
	}
	return cmds
}

// runHook runs a hook in the current repository with git's positional
// arguments.
func runHook(ctx context.Context, name string, args []string) error {
	if err := githook.Validate(name); err != nil {
		return err
	}
	repo, err := requireRepo(ctx)
	if err != nil {
		return err
	}
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)

	var stdin []string
	if stdinHooks[name] {
		if stdin, err = output.ReadInput(os.Stdin); err != nil {
			return err
		}
	}

	console := output.FromContext(ctx).
		WithArguments(hookArguments(name, args)).
		WithInput(stdin)

	l.Debug("running hook", "hook", name, "args", strings.Join(args, " "))

	runner, err := hooks.NewRunner(name, hooks.Deps{
		Config:    cfg,
		IO:        console,
		Repo:      repo,
		Registry:  newRegistry(),
		Verbosity: verbosityOverride(),
	})
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}

// hookArguments names git's positional arguments. Extra arguments are kept
// under their index.
func hookArguments(name string, args []string) map[string]string {
	names := githook.Arguments(name)
	named := make(map[string]string, len(args))
	for i, v := range args {
		if i < len(names) {
			named[names[i]] = v
		} else {
			named[fmt.Sprint(i)] = v
		}
	}
	return named
}

// verbosityOverride maps the --verbose and --quiet flags to a verbosity.
func verbosityOverride() string {
	switch {
	case verbose:
		return config.VerbosityVerbose
	case quiet:
		return config.VerbosityQuiet
	default:
		return ""
	}
}
