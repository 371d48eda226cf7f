// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running the wrapped command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv with stdout and stderr attached to the given
	// writers and returns the command's exit code unchanged.
	//
	// A non-nil error means the command could not be started or was
	// interrupted before returning normally; the exit code is -1 then.
	Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) (int, error)
}
