package cmd

import (
	"errors"
	"fmt"

	"meshnodes/internal/cli"
	"meshnodes/internal/config"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// newSelfUpdateCmd creates the Cobra command for the self-update functionality.
// This allows the application to update itself to the latest version from GitHub.
func newSelfUpdateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "self-update",
		Short: "Update meshnodes to the latest version",
		Long: `Checks for the latest release of meshnodes on GitHub and
updates the current binary if a newer version is found.

The repository releases are fetched from is read from update.repository
in config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	return cmd
}

// runSelfUpdate checks the current version against the latest GitHub release and updates if necessary.
func runSelfUpdate(cmd *cobra.Command, configPath string) error {
	currentVersion := cmd.Root().Version
	// Development builds do not follow semantic versioning.
	if currentVersion == "" || currentVersion == "dev" {
		return errors.New("cannot self-update a development version")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	repoSlug := cfg.Update.Repository
	if repoSlug == "" {
		return errors.New("no release repository configured, set update.repository in config.yaml")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintln(out, "Checking for updates...")

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	ctx := cmd.Context()
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest release for %s could not be found", repoSlug)
	}

	if !latest.GreaterThan(currentVersion) {
		fmt.Fprintln(out, "Current version is the latest.")
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s (published at %s)\n", latest.Version(), latest.PublishedAt)
	fmt.Fprintf(out, "Release notes:\n%s\n", latest.ReleaseNotes)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating %s to version %s...\n", exe, latest.Version())

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Successfully updated to version %s", latest.Version())))
	return nil
}
