package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hooked/internal/config"
	"github.com/raphi011/hooked/internal/doctor"
	"github.com/raphi011/hooked/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var (
		fix    bool
		binary string
	)

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair the hook setup",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Diagnose the hook setup of the current repository.

Checks that every extension, condition and plugin in the config is known,
and that every enabled hook has an executable script installed.`,
		Example: `  hooked doctor        # Check for issues
  hooked doctor --fix  # Install missing scripts`,
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

			_, err = doctor.Run(ctx, output.FromContext(ctx).Writer(), doctor.Options{
				Config:   config.FromContext(ctx),
				Registry: newRegistry(),
				HooksDir: dir,
				Binary:   binary,
				Fix:      fix,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair issues where possible")
	cmd.Flags().StringVar(&binary, "binary", "hooked", "Command installed scripts run")

	return cmd
}
