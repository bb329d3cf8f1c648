package command_test

import (
	"context"
	"os/exec"
	"testing"

	"codeberg.org/mutker/pemon/internal/command"
	"codeberg.org/mutker/pemon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner(t *testing.T) {
	requireShell(t)

	out, err := command.ExecRunner{}.Run(context.Background(), "sh", "-c", "echo 'temperature : 35 C'")
	require.NoError(t, err)
	assert.Equal(t, "temperature : 35 C\n", out)
}

func TestExecRunnerFailure(t *testing.T) {
	requireShell(t)

	_, err := command.ExecRunner{}.Run(context.Background(), "sh", "-c", "echo 'no such device' >&2; exit 3")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCommandFailed))

	var coded errors.Error
	require.True(t, errors.As(err, &coded))
	failure, ok := coded.GetData().(command.Failure)
	require.True(t, ok)
	assert.Equal(t, "no such device", failure.Stderr)
	assert.Contains(t, failure.Command, "sh -c")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := command.ExecRunner{}.Run(context.Background(), "pemon-definitely-not-installed")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCommandFailed))
}
