// Package prune removes nodes the daemon has not heard from recently.
package prune

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"meshnodes/internal/cli"
	"meshnodes/internal/meshtastic"
	"meshnodes/internal/nodedb"
	"meshnodes/pkg/logging"
)

const subsystem = "Prune"

// DefaultInactiveAfter is the age past which a node counts as inactive.
const DefaultInactiveAfter = time.Hour

// NodeRemover deletes a node from the daemon's node database.
type NodeRemover interface {
	RemoveNode(ctx context.Context, id string) error
}

// Options configures a Pruner.
type Options struct {
	// InactiveAfter is the age threshold, DefaultInactiveAfter when zero.
	InactiveAfter time.Duration
	// DryRun reports what would be removed without issuing any command.
	DryRun bool
	// Out receives one action line per eligible node.
	Out io.Writer
	// ErrOut receives the error text of failed removals.
	ErrOut io.Writer
}

// Result counts what a prune pass did.
type Result struct {
	Eligible int
	Removed  int
	Failed   int
	Skipped  int
}

// Pruner issues removal commands for inactive nodes, strictly one at a time.
type Pruner struct {
	remover   NodeRemover
	threshold int64
	opts      Options
}

// New creates a Pruner.
func New(remover NodeRemover, opts Options) *Pruner {
	if opts.InactiveAfter <= 0 {
		opts.InactiveAfter = DefaultInactiveAfter
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.ErrOut == nil {
		opts.ErrOut = io.Discard
	}
	return &Pruner{
		remover:   remover,
		threshold: int64(opts.InactiveAfter / time.Second),
		opts:      opts,
	}
}

// Eligible reports whether rec should be removed from the daemon: it is not
// marked favorite, and it either was never heard from or its age exceeds
// threshold seconds.
func Eligible(rec *nodedb.NodeRecord, threshold int64) bool {
	if rec.Favorite() {
		return false
	}
	age, hasAge := rec.Age()
	if hasAge && rec.LastHeardDisplay != "" {
		return age > threshold
	}
	return rec.LastHeard == nil
}

// Prune removes every eligible record from the daemon in record order, then
// drops every record older than the threshold from db.
//
// A failed removal is reported on ErrOut and the batch continues. The
// in-memory filter ignores favorite status, so a favorite that is too old is
// kept on the daemon but still disappears from db.
func (p *Pruner) Prune(ctx context.Context, db *nodedb.NodeDB) Result {
	var res Result
	for _, rec := range db.Records() {
		if !Eligible(rec, p.threshold) {
			continue
		}
		res.Eligible++

		id := rec.UserID()
		if id == "" {
			logging.Warn(subsystem, "Node %s has no user.id, cannot remove it", rec.Key)
			res.Skipped++
			continue
		}

		if p.opts.DryRun {
			fmt.Fprintf(p.opts.Out, "would remove node: %s\n", rec.LongName())
			continue
		}

		fmt.Fprintf(p.opts.Out, "removing node: %s\n", rec.LongName())
		if err := p.remover.RemoveNode(ctx, id); err != nil {
			res.Failed++
			logging.Error(subsystem, err, "Failed to remove node %s", id)
			fmt.Fprintln(p.opts.ErrOut, cli.FormatError(errors.New(failureText(err))))
			continue
		}
		res.Removed++
	}

	if !p.opts.DryRun {
		FilterInactive(db, p.threshold)
	}
	logging.Info(subsystem, "Prune finished: %d eligible, %d removed, %d failed, %d skipped",
		res.Eligible, res.Removed, res.Failed, res.Skipped)
	return res
}

// FilterInactive drops every record whose age exceeds threshold seconds.
// Records without an age are kept.
func FilterInactive(db *nodedb.NodeDB, threshold int64) {
	db.Filter(func(rec *nodedb.NodeRecord) bool {
		age, ok := rec.Age()
		return !ok || age <= threshold
	})
}

// failureText prefers the daemon's own error output over the wrapped error.
// The daemon's "Error: " prefix is dropped since FormatError adds its own.
func failureText(err error) string {
	var cmdErr *meshtastic.CommandError
	if errors.As(err, &cmdErr) {
		if msg := strings.TrimSpace(cmdErr.Stderr); msg != "" {
			return strings.TrimPrefix(msg, "Error: ")
		}
	}
	return err.Error()
}
