package cmd

import (
	"fmt"
	"strings"
	"time"

	"meshnodes/internal/cli"
	"meshnodes/internal/clock"
	"meshnodes/internal/config"
	"meshnodes/internal/meshtastic"
	"meshnodes/internal/nodedb"
	"meshnodes/internal/prune"
	"meshnodes/internal/view"
	"meshnodes/pkg/logging"

	"github.com/spf13/cobra"
)

const subsystem = "CLI"

// reportFlags holds the flag values of the report command.
type reportFlags struct {
	cli.CommandFlags

	meshtasticArgs string
	timeout        time.Duration
	removeInactive bool
	dryRun         bool
	inactiveAfter  time.Duration
	columns        map[string]*bool

	// accepted for compatibility, both columns are always shown
	fullName  bool
	lastHeard bool
}

// Swapped out by tests.
var (
	commandRunner meshtastic.Runner = meshtastic.ExecRunner{}
	reportClock   clock.Clock       = clock.RealClock{}
)

func registerReportFlags(cmd *cobra.Command, f *reportFlags) {
	f.columns = make(map[string]*bool, len(view.Columns))
	cli.RegisterCommonFlags(cmd, &f.CommandFlags)

	flags := cmd.Flags()
	flags.StringVar(&f.meshtasticArgs, "meshtastic", "", `Extra arguments for the meshtastic command, e.g. "--host 192.168.1.20"`)
	flags.DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "Timeout of each meshtastic invocation")
	flags.BoolVar(&f.removeInactive, "remove-inactive", false, "Remove nodes not heard from within --inactive-after, or never heard")
	flags.BoolVar(&f.dryRun, "dry-run", false, "With --remove-inactive, only print the nodes that would be removed")
	flags.DurationVar(&f.inactiveAfter, "inactive-after", config.DefaultInactiveAfter, "Age after which --remove-inactive removes a node")

	for _, c := range view.Columns {
		f.columns[c.Name] = flags.Bool(c.Flag, false, c.Usage)
	}

	flags.BoolVar(&f.fullName, "fullname", false, "Display user.longName column (always shown)")
	flags.BoolVar(&f.lastHeard, "lastheard", false, "Display lastHeard column (always shown)")
	_ = flags.MarkHidden("fullname")
	_ = flags.MarkHidden("lastheard")
}

// runReport queries the radio, optionally prunes inactive nodes and prints the report.
func runReport(cmd *cobra.Command, f *reportFlags) error {
	level := logging.LevelWarn
	if f.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	cfg, err := config.LoadConfig(f.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" && !f.Debug {
		// Validated by LoadConfig
		level, _ = logging.ParseLevel(cfg.LogLevel)
		logging.InitForCLI(level, cmd.ErrOrStderr())
	}
	renderOpts, err := f.ToRenderOptions(cfg.Output)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, f, &cfg); err != nil {
		return err
	}

	client := meshtastic.NewClient(meshtastic.Options{
		Binary:    cfg.Meshtastic.Binary,
		ExtraArgs: cfg.Meshtastic.Args,
		Timeout:   cfg.Meshtastic.Timeout,
		Runner:    commandRunner,
	})

	ctx := cmd.Context()
	stop := cli.StartSpinner("Querying "+strings.Join(client.CommandLine("--info"), " "), f.Quiet)
	output, err := client.Info(ctx)
	stop()
	if err != nil {
		return fmt.Errorf("failed to read node table: %w", err)
	}

	now := reportClock.Now()
	db, err := nodedb.Load(output)
	if err != nil {
		return fmt.Errorf("failed to read node table: %w", err)
	}
	selfNum, hasSelf := nodedb.MyNodeNum(output)
	if !hasSelf {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("myNodeNum not found in meshtastic output, the local node will be listed"))
	}
	nodedb.Normalize(db, now)
	logging.Debug(subsystem, "Loaded %d nodes", db.Len())

	if f.removeInactive {
		pruner := prune.New(client, prune.Options{
			InactiveAfter: cfg.Prune.InactiveAfter,
			DryRun:        f.dryRun,
			Out:           cmd.OutOrStdout(),
			ErrOut:        cmd.ErrOrStderr(),
		})
		pruner.Prune(ctx, db)
		if !f.dryRun && renderOpts.Format.IsTabular() {
			return nil
		}
	}

	v := view.Project(db, view.Options{
		Enabled: enabledColumns(f, cfg.Output.Columns),
		SelfNum: selfNum,
		HasSelf: hasSelf,
	})
	return cli.Render(cmd.OutOrStdout(), v, db, renderOpts)
}

// applyFlagOverrides copies explicitly set flags over the configuration.
func applyFlagOverrides(cmd *cobra.Command, f *reportFlags, cfg *config.MeshnodesConfig) error {
	flags := cmd.Flags()
	if flags.Changed("meshtastic") {
		cfg.Meshtastic.Args = f.meshtasticArgs
	}
	if flags.Changed("timeout") {
		if f.timeout <= 0 {
			return fmt.Errorf("--timeout must be positive, got %s", f.timeout)
		}
		cfg.Meshtastic.Timeout = f.timeout
	}
	if flags.Changed("inactive-after") {
		if f.inactiveAfter <= 0 {
			return fmt.Errorf("--inactive-after must be positive, got %s", f.inactiveAfter)
		}
		cfg.Prune.InactiveAfter = f.inactiveAfter
	}
	if f.dryRun && !f.removeInactive {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("--dry-run has no effect without --remove-inactive"))
	}
	return nil
}

// enabledColumns merges the configured column names with the column flags.
func enabledColumns(f *reportFlags, configured []string) map[string]bool {
	enabled := view.EnableAll(configured...)
	for name, on := range f.columns {
		if *on {
			enabled[name] = true
		}
	}
	return enabled
}
