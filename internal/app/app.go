// Package app implements the application layer for memo.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	runner *runner.Runner
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance. Command output goes to the process
// streams by default.
func New(loader ports.ConfigLoader, run *runner.Runner) *App {
	return &App{
		loader: loader,
		runner: run,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects the wrapped command's output streams. Used for
// testing.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.stdout = stdout
	a.stderr = stderr
}

// RunOptions carries per-invocation overrides from the CLI.
type RunOptions struct {
	ConfigPath string
	// ExtraArgs, when non-nil, replaces the configured extra arguments.
	ExtraArgs *string
	// NoRestore forces a cache miss.
	NoRestore bool
}

// Run loads the configuration and executes the cached run. When the
// wrapped command exits non-zero the error is a domain.ExitError carrying
// the exact code.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	res, err := a.runner.Run(ctx, cfg, a.stdout, a.stderr, runner.Options{NoRestore: opts.NoRestore})
	if err != nil {
		return zerr.Wrap(err, "run failed")
	}

	if res.ExitCode != 0 {
		return &domain.ExitError{Code: res.ExitCode}
	}

	return nil
}

// Key loads the configuration and returns the cache key that a run would
// use, without running anything.
func (a *App) Key(opts RunOptions) (domain.Key, error) {
	cfg, err := a.load(opts)
	if err != nil {
		return "", err
	}

	return a.runner.Key(cfg)
}

func (a *App) load(opts RunOptions) (*domain.RunConfig, error) {
	cfg, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.ExtraArgs != nil {
		cfg.ExtraArgs = *opts.ExtraArgs
	}

	return cfg, nil
}

// Components bundles the application with the adapters the CLI entry point
// needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}
