package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/git"
	"github.com/raphi011/hooked/internal/hooks"
	"github.com/raphi011/hooked/internal/hooks/builtin"
	"github.com/raphi011/hooked/internal/log"
	"github.com/raphi011/hooked/internal/output"
	"github.com/raphi011/hooked/internal/plugins"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "HOOKED_CONFIG"

var (
	// Global flags
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

// Command group IDs for organizing help output
const (
	GroupHooks  = "hooks"
	GroupSetup  = "setup"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooked",
		Short: "Git hook manager",
		Long: `hooked runs the actions configured for git hooks.

Actions are shell commands or built-in extensions ("::message.rules"),
configured per hook in hooked.toml at the repository root. Virtual hooks
like post-change add their actions to several git hooks at once.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip setup for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			if err := git.CheckGit(); err != nil {
				return err
			}
			ctx, err := setup(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only report failures")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: hooked.toml in the repository root, or $"+ConfigEnv+")")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	cmd.AddCommand(newHookCmd())
	for _, c := range newHookShortcutCmds() {
		cmd.AddCommand(c)
	}
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUninstallCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// printError reports a failed command. Hook failures were already reported
// action by action, so only the summary is printed for them.
func printError(w io.Writer, err error) {
	var failed *hooks.HookFailedError
	if errors.As(err, &failed) {
		fmt.Fprintln(w, output.Failed(err.Error()))
		return
	}
	fmt.Fprintln(w, "hooked:", err)
}

// repoKey is the context key for the current repository.
type repoKey struct{}

// repoFromContext returns the repository the command runs in, nil outside
// of a git work tree.
func repoFromContext(ctx context.Context) *git.Repository {
	r, _ := ctx.Value(repoKey{}).(*git.Repository)
	return r
}

// requireRepo returns the current repository or an error outside of one.
func requireRepo(ctx context.Context) (*git.Repository, error) {
	if r := repoFromContext(ctx); r != nil {
		return r, nil
	}
	return nil, errors.New("not inside a git repository")
}

// setup locates the repository, loads the config and attaches config,
// repository, logger and console to the context.
func setup(ctx context.Context, stdout, stderr io.Writer) (context.Context, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// Outside a repository only config commands are useful
	root := workDir
	repo, err := git.Open(ctx, workDir)
	if err == nil {
		root = repo.Dir()
		ctx = context.WithValue(ctx, repoKey{}, repo)
	}

	path := configPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		path = config.FindPath(root)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	ctx = config.WithConfig(ctx, cfg)

	verbosity := cfg.Verbosity()
	switch {
	case verbose:
		verbosity = config.VerbosityVerbose
	case quiet:
		verbosity = config.VerbosityQuiet
	}
	ctx = log.WithLogger(ctx, log.ForVerbosity(stderr, verbosity))
	ctx = output.WithConsole(ctx, output.New(stdout, cfg.UseAnsiColors() && !noColor))

	log.FromContext(ctx).Debug("config loaded", "path", cfg.Path(), "fromFile", cfg.IsLoadedFromFile())
	return ctx, nil
}

// newRegistry returns a registry with all built-in extensions, conditions
// and plugins.
func newRegistry() *hooks.Registry {
	reg := hooks.NewRegistry()
	builtin.Register(reg)
	plugins.Register(reg)
	return reg
}
