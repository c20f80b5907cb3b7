package cmd

import (
	"errors"
	"os"

	"meshnodes/internal/meshtastic"
	"meshnodes/internal/nodedb"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (invalid arguments, bad configuration).
	ExitCodeError = 1
	// ExitCodeInfoFailed indicates that `meshtastic --info` could not be run or exited non-zero.
	ExitCodeInfoFailed = 2
	// ExitCodeBadOutput indicates that the node table could not be found in, or parsed from, the info output.
	ExitCodeBadOutput = 3
)

// rootCmd represents the base command for the meshnodes application.
// Without a subcommand it prints the node report.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var flags reportFlags
	cmd := &cobra.Command{
		Use:   "meshnodes",
		Short: "Report and prune the nodes known to a Meshtastic radio",
		Long: `meshnodes runs "meshtastic --info", recovers the node table from its
output and prints it as a table sorted by the time each node was last heard.

With --remove-inactive it also asks the radio to forget every node that has
not been heard from within --inactive-after, or was never heard at all.
Favorite nodes are never removed.`,
		Args: cobra.NoArgs,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		// This is useful for providing cleaner error output to the user.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, &flags)
		},
	}
	registerReportFlags(cmd, &flags)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	// SetVersionTemplate defines a custom template for displaying the version.
	// This is used when the --version flag is invoked.
	rootCmd.SetVersionTemplate(`{{printf "meshnodes version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var cmdErr *meshtastic.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Op == meshtastic.OpInfo {
		return ExitCodeInfoFailed
	}

	if errors.Is(err, nodedb.ErrMarkersNotFound) {
		return ExitCodeBadOutput
	}

	var malformed *nodedb.MalformedOutputError
	if errors.As(err, &malformed) {
		return ExitCodeBadOutput
	}

	// Default to general error
	return ExitCodeError
}
