// Package meshtastic invokes the meshtastic command line client.
package meshtastic

import (
	"context"
	"strings"
	"time"

	"meshnodes/pkg/logging"
)

const subsystem = "Meshtastic"

const (
	// DefaultBinary is looked up in PATH when no binary is configured.
	DefaultBinary = "meshtastic"
	// DefaultTimeout bounds every single invocation.
	DefaultTimeout = 60 * time.Second

	infoFlag       = "--info"
	removeNodeFlag = "--remove-node"
)

// Options configures a Client.
type Options struct {
	// Binary is the meshtastic executable, DefaultBinary when empty.
	Binary string
	// ExtraArgs is forwarded verbatim to every invocation, split on whitespace,
	// e.g. "--host 192.168.1.20".
	ExtraArgs string
	// Timeout bounds each invocation, DefaultTimeout when zero or negative.
	Timeout time.Duration
	// Runner executes the commands, ExecRunner when nil.
	Runner Runner
}

// Client issues `--info` and `--remove-node` commands one at a time.
type Client struct {
	binary  string
	args    []string
	timeout time.Duration
	runner  Runner
}

// NewClient creates a client from opts, filling in defaults.
func NewClient(opts Options) *Client {
	c := &Client{
		binary:  opts.Binary,
		args:    strings.Fields(opts.ExtraArgs),
		timeout: opts.Timeout,
		runner:  opts.Runner,
	}
	if c.binary == "" {
		c.binary = DefaultBinary
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.runner == nil {
		c.runner = ExecRunner{}
	}
	return c
}

// Info runs `meshtastic <extra args> --info` and returns its stdout.
func (c *Client) Info(ctx context.Context) (string, error) {
	res, err := c.run(ctx, OpInfo, infoFlag)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// RemoveNode runs `meshtastic <extra args> --remove-node <id>`.
func (c *Client) RemoveNode(ctx context.Context, id string) error {
	_, err := c.run(ctx, OpRemoveNode, removeNodeFlag, id)
	return err
}

// CommandLine returns the full command line for the given trailing arguments.
func (c *Client) CommandLine(trailing ...string) []string {
	cmdline := make([]string, 0, 1+len(c.args)+len(trailing))
	cmdline = append(cmdline, c.binary)
	cmdline = append(cmdline, c.args...)
	return append(cmdline, trailing...)
}

func (c *Client) run(ctx context.Context, op string, trailing ...string) (Result, error) {
	cmdline := c.CommandLine(trailing...)
	logging.Debug(subsystem, "Running %s", strings.Join(cmdline, " "))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	res, err := c.runner.Run(ctx, cmdline[0], cmdline[1:]...)
	logging.Debug(subsystem, "%s finished in %s with exit code %d", op, time.Since(start).Round(time.Millisecond), res.ExitCode)

	if err != nil {
		return res, &CommandError{Op: op, Args: cmdline, ExitCode: res.ExitCode, Stderr: res.Stderr, Err: err}
	}
	if res.ExitCode != 0 {
		return res, &CommandError{Op: op, Args: cmdline, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}
