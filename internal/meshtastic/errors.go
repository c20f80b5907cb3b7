package meshtastic

import (
	"fmt"
	"strings"
)

// Operations recorded on CommandError.
const (
	OpInfo       = "info"
	OpRemoveNode = "remove-node"
)

// CommandError reports a meshtastic invocation that failed to start, timed
// out, or exited with a non-zero status.
type CommandError struct {
	// Op is OpInfo or OpRemoveNode.
	Op string
	// Args is the full command line, binary first.
	Args []string
	// ExitCode is the process exit status, -1 if it never exited normally.
	ExitCode int
	// Stderr is the captured error stream.
	Stderr string
	// Err is the underlying start or timeout error, nil for a plain non-zero exit.
	Err error
}

func (e *CommandError) Error() string {
	cmdline := strings.Join(e.Args, " ")
	if e.Err != nil {
		return fmt.Sprintf("running %q failed: %v", cmdline, e.Err)
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%q exited with code %d", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("%q exited with code %d: %s", cmdline, e.ExitCode, msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
