package meshtastic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result is the captured outcome of one finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a command to completion. A non-zero exit is reported through
// Result.ExitCode, not as an error; the error is reserved for commands that
// could not be started or did not finish.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

// ExecRunner runs commands on the host via os/exec.
type ExecRunner struct{}

// Run executes name with args and captures stdout and stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := execCommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return res, fmt.Errorf("%s did not finish in time: %w", name, ctxErr)
		}
		return res, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		res.ExitCode = -1
		return res, err
	}
	return res, nil
}
