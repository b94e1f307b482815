package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/githook"
	"github.com/raphi011/hooked/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage hooked configuration.

The config file is hooked.toml (or hooked.yml) in the repository root.
Without a file, defaults are used.`,
		Example: `  hooked config init          # Create hooked.toml
  hooked config show          # Show effective config
  hooked config show -f yaml  # Show effective config as YAML
  hooked config hooks         # List hooks and their actions`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigHooksCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  hooked config init      # Create hooked.toml in the repository root
  hooked config init -f   # Overwrite existing config
  hooked config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := output.FromContext(ctx)

			if stdout {
				console.Printf("%s", config.DefaultConfig())
				return nil
			}

			dir := filepath.Dir(config.FromContext(ctx).Path())
			if repo := repoFromContext(ctx); repo != nil {
				dir = repo.Dir()
			}
			path, err := config.Init(dir, force)
			if err != nil {
				return err
			}
			console.Write("Created config file: " + path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			w := output.FromContext(ctx).Writer()

			if !cfg.IsLoadedFromFile() {
				fmt.Fprintf(w, "# %s not found, showing defaults\n", cfg.Path())
			}
			switch format {
			case "toml":
				return toml.NewEncoder(w).Encode(cfg.Data())
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(cfg.Data()); err != nil {
					return err
				}
				return enc.Close()
			default:
				return errors.New(`invalid format: must be "toml" or "yaml"`)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (toml, yaml)")
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newConfigHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List hooks with their effective actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			console := output.FromContext(ctx)

			var rows [][]string
			for _, name := range githook.Concrete() {
				hook, err := cfg.HookToExecute(name)
				if err != nil {
					return err
				}
				rows = append(rows, hookRows(name, hook)...)
			}
			console.Write(strings.TrimSuffix(output.RenderTable(hookHeaders, rows), "\n"))
			return nil
		},
	}
	return cmd
}

var hookHeaders = []string{"HOOK", "STATE", "ACTION", "COMMAND", "CONDITIONS"}

// hookRows renders a hook as one row per action, or a single row when it
// has none.
func hookRows(name string, hook config.HookConfig) [][]string {
	state := output.Muted("disabled")
	if hook.Enabled {
		state = output.Passed("enabled")
	}
	if len(hook.Actions) == 0 {
		return [][]string{{name, state, "-", "-", "-"}}
	}
	rows := make([][]string, 0, len(hook.Actions))
	for _, a := range hook.Actions {
		command := "-"
		if a.Label != "" {
			command = output.Muted(a.Action.String())
		}
		rows = append(rows, []string{name, state, a.Name(), command, strconv.Itoa(len(a.Conditions))})
	}
	return rows
}
