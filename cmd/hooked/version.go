package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hooked/internal/output"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Write(versionString())
			return nil
		},
	}
}
