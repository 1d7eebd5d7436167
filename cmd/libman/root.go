package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "libman",
		Short:   "Integrate external libraries into the FsmOS framework",
		Version: version,
	}

	cmd.PersistentFlags().String("libs", "", "Library directory (default: libs/ next to the tool's install directory)")

	cmd.AddCommand(
		newIntegrateCmd(),
		newUpdateCmd(),
		newStatusCmd(),
		newPinCmd(),
		newRemoveCmd(),
		newDoctorCmd(),
	)

	return cmd
}
