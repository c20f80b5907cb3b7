package meshtastic

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecCommandContext re-executes the test binary as a fake meshtastic.
func mockExecCommandContext(ctx context.Context, command string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", command}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is a helper process for mocking exec.Command
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) < 2 {
		os.Exit(2)
	}

	switch args[len(args)-1] {
	case "--info":
		fmt.Fprintln(os.Stdout, "Nodes in mesh: {")
		fmt.Fprintln(os.Stdout, "}")
		fmt.Fprintln(os.Stdout, "Preferences: {}")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "Error: node not found")
		os.Exit(3)
	case "hang":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}
	os.Exit(0)
}

func withMockExec(t *testing.T) {
	t.Helper()
	old := execCommandContext
	execCommandContext = mockExecCommandContext
	t.Cleanup(func() { execCommandContext = old })
}

func TestExecRunner_CapturesStdout(t *testing.T) {
	withMockExec(t)

	res, err := ExecRunner{}.Run(context.Background(), "meshtastic", "--info")
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Stdout, "Nodes in mesh")
	assert.Empty(t, res.Stderr)
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	withMockExec(t)

	res, err := ExecRunner{}.Run(context.Background(), "meshtastic", "--remove-node", "fail")
	require.NoError(t, err)

	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Stderr, "node not found")
}

func TestExecRunner_Timeout(t *testing.T) {
	withMockExec(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	res, err := ExecRunner{}.Run(ctx, "meshtastic", "hang")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	res, err := ExecRunner{}.Run(context.Background(), "meshnodes-definitely-not-installed")
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
}
