package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrInputNotFound is returned when a tracked file required for key
	// computation is missing.
	ErrInputNotFound = zerr.New("tracked file not found")

	// ErrNoCommand is returned when the configuration does not define a
	// command to run.
	ErrNoCommand = zerr.New("no command configured")
)

// ExitError reports a wrapped command that exited with a non-zero code.
// The code is propagated unchanged as the process exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "command exited with code " + strconv.Itoa(e.Code)
}
