// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs argv with the inherited environment, streaming stdout and
// stderr to the given writers. The command's exit code is returned
// unchanged; output is never captured or rewritten so diffs and colors
// reach the user exactly as the tool produced them.
func (e *Executor) Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) (int, error) {
	if len(argv) == 0 {
		return -1, domain.ErrNoCommand
	}

	e.logger.Info("running " + strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		// Interruption comes first: a context-killed process also surfaces
		// as an ExitError, but must not be mistaken for a tool failure.
		if ctx.Err() != nil {
			return -1, zerr.With(zerr.Wrap(ctx.Err(), "command interrupted"), "command", argv[0])
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, zerr.With(zerr.Wrap(err, "command failed to start"), "command", argv[0])
	}

	return 0, nil
}
