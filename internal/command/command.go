package command

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"syscall"

	"codeberg.org/mutker/pemon/internal/errors"
)

// Runner executes an external utility and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run starts name in its own process group so a terminal interrupt aimed
// at pemon does not kill a utility while a tick is reading from it.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Run(); err != nil {
		return "", errors.New().Wrap(errors.ErrCommandFailed, err).WithData(Failure{
			Command: strings.Join(append([]string{name}, args...), " "),
			Stderr:  strings.TrimSpace(stderr.String()),
		})
	}

	return stdout.String(), nil
}

// Failure describes a command that exited unsuccessfully.
type Failure struct {
	Command string
	Stderr  string
}

func (f Failure) String() string {
	if f.Stderr == "" {
		return f.Command
	}

	return f.Command + " (" + f.Stderr + ")"
}
