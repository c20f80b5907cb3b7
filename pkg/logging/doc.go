// Package logging provides subsystem-tagged structured logging for meshnodes.
//
// It is a thin layer over Go's log/slog. Every entry carries a subsystem
// attribute so that messages from the daemon client, the parser and the
// pruner can be told apart on stderr.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Meshtastic", "Running %s", cmdline)
//	logging.Info("Prune", "Removed %d nodes", n)
//	logging.Warn("NodeDB", "myNodeNum not reported, self node will be listed")
//	logging.Error("Prune", err, "Failed to remove %s", id)
//
// Report output (tables, JSON, prune actions) is written directly to stdout by
// the commands; this package is only for diagnostics. Until InitForCLI is
// called every message is discarded.
package logging
