package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalogctl",
		Short:   "Consolidate workspace dependency versions into the pnpm catalog",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Workspace root directory")

	cmd.AddCommand(
		newConsolidateCmd(),
		newStatusCmd(),
		newDoctorCmd(),
	)

	return cmd
}
