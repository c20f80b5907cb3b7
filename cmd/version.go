package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of meshnodes",
		Long:  `All software has versions. This is meshnodes's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// The root command's Version is set from main at build time.
			fmt.Fprintf(cmd.OutOrStdout(), "meshnodes version %s\n", cmd.Root().Version)
		},
	}
}
