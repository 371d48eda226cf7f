// Package runner implements the cache-keyed command runner.
package runner

import (
	"context"
	"io"
	"os"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes one command behind a content-keyed directory cache.
//
// The run proceeds key computation, restore, execution, and save. The
// command always runs and its exit code is always reported unchanged;
// whether the cache directory was restored only decides if a save happens
// afterwards. Store failures are logged and swallowed, so an unreachable
// store degrades to an uncached run rather than a process failure.
type Runner struct {
	keyer         ports.Keyer
	store         ports.SnapshotStore
	executor      ports.Executor
	fingerprinter ports.Fingerprinter
	logger        ports.Logger
	telemetry     ports.Telemetry
}

// NewRunner creates a new Runner.
func NewRunner(
	keyer ports.Keyer,
	store ports.SnapshotStore,
	executor ports.Executor,
	fingerprinter ports.Fingerprinter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Runner {
	return &Runner{
		keyer:         keyer,
		store:         store,
		executor:      executor,
		fingerprinter: fingerprinter,
		logger:        logger,
		telemetry:     telemetry,
	}
}

// Options adjust a single run.
type Options struct {
	// NoRestore forces a cache miss: the stored entry is not restored and
	// the cache directory is still saved after the command completes.
	NoRestore bool
}

// Result reports the outcome of one cached run.
type Result struct {
	Key      domain.Key
	CacheHit bool
	ExitCode int
}

// Run executes the configured command behind the cache and returns its
// exit code unchanged. A non-nil error means the run never produced an
// exit code: a tracked file was missing, the command could not start, or
// it was interrupted. No save is attempted on those paths.
func (r *Runner) Run(ctx context.Context, cfg *domain.RunConfig, stdout, stderr io.Writer, opts Options) (*Result, error) {
	argv := cfg.Argv()
	if len(argv) == 0 {
		return nil, domain.ErrNoCommand
	}

	key, err := r.Key(cfg)
	if err != nil {
		return nil, err
	}

	// The cache directory exists for the whole run, hit or miss, and its
	// contents are left in place on every exit path.
	if err := os.MkdirAll(cfg.CacheDir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", cfg.CacheDir)
	}

	hit := false
	if !opts.NoRestore {
		hit = r.restore(ctx, key, cfg.CacheDir)
	}

	_, vertex := r.telemetry.Record(ctx, "run "+argv[0])
	code, execErr := r.executor.Execute(ctx, argv, stdout, stderr)
	vertex.Done(execErr)
	if execErr != nil {
		// Interrupted or never started: leave the cache directory intact
		// and skip the save.
		return nil, execErr
	}

	if !hit {
		r.save(ctx, key, cfg.CacheDir)
	}

	return &Result{Key: key, CacheHit: hit, ExitCode: code}, nil
}

// Key computes the cache key for the given configuration without running
// anything. The environment fingerprint from the configuration wins over
// auto-detection.
func (r *Runner) Key(cfg *domain.RunConfig) (domain.Key, error) {
	fingerprint := cfg.EnvFingerprint
	if fingerprint == "" {
		fp, err := r.fingerprinter.Fingerprint(cfg.Argv())
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve environment fingerprint")
		}
		fingerprint = fp
	}

	key, err := r.keyer.ComputeKey(cfg.CacheNamespace, fingerprint, cfg.TrackedFiles)
	if err != nil {
		return "", zerr.Wrap(err, "failed to compute cache key")
	}

	return key, nil
}

func (r *Runner) restore(ctx context.Context, key domain.Key, dir string) bool {
	_, vertex := r.telemetry.Record(ctx, "restore cache")

	hit, err := r.store.Restore(ctx, key, dir)
	vertex.Done(err)
	if err != nil {
		// Store problems never fail the run.
		r.logger.Warn("cache restore failed, continuing without cache")
		r.logger.Error(err)
		return false
	}

	if hit {
		r.logger.Info("cache hit for key " + key.String())
	} else {
		r.logger.Info("cache miss for key " + key.String())
	}
	return hit
}

func (r *Runner) save(ctx context.Context, key domain.Key, dir string) {
	_, vertex := r.telemetry.Record(ctx, "save cache")

	err := r.store.Save(ctx, key, dir)
	vertex.Done(err)
	if err != nil {
		r.logger.Warn("cache save failed, result not cached")
		r.logger.Error(err)
		return
	}

	r.logger.Info("saved cache for key " + key.String())
}
