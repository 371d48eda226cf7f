// Package cas implements the content addressed snapshot store.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.SnapshotStore = (*Store)(nil)

const (
	entriesDir   = "entries"
	filesDir     = "files"
	manifestName = "manifest.json"
)

// Store persists directory snapshots on the local file system. Entries are
// addressed by the hex SHA-256 of the cache key and replaced atomically via
// rename, so concurrent writers degrade to last write wins.
type Store struct {
	root string
}

// NewStore creates a snapshot store rooted at the given directory. An empty
// root defaults to a memo directory under the user cache directory.
func NewStore(root string) (*Store, error) {
	if root == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve user cache directory")
		}
		root = filepath.Join(base, "memo")
	}

	root = filepath.Clean(root)
	if err := os.MkdirAll(filepath.Join(root, entriesDir), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create store directory")
	}

	return &Store{root: root}, nil
}

func (s *Store) entryDir(key domain.Key) string {
	return filepath.Join(s.root, entriesDir, key.EntryID())
}

// Restore materializes the snapshot stored under key into dir. On a miss
// dir is left as-is, created empty if absent, and false is returned with a
// nil error. Restored files are verified against the manifest hashes; a
// corrupt entry is reported as an error and the caller should treat it as
// a miss.
func (s *Store) Restore(ctx context.Context, key domain.Key, dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, zerr.Wrap(err, "failed to create cache directory")
	}

	entry := s.entryDir(key)
	//nolint:gosec // Entry path is derived from the key hash
	data, err := os.ReadFile(filepath.Join(entry, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read snapshot manifest"), "key", key.String())
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to parse snapshot manifest"), "key", key.String())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, stat := range manifest.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return restoreFile(entry, dir, stat)
		})
	}

	if err := g.Wait(); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to restore snapshot"), "key", key.String())
	}

	return true, nil
}

func restoreFile(entry, dir string, stat domain.FileStat) error {
	src := filepath.Join(entry, filesDir, stat.Path)
	dst := filepath.Join(dir, stat.Path)

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	hash, err := copyFile(src, dst)
	if err != nil {
		return err
	}

	if stat.Hash != "" && hash != stat.Hash {
		return zerr.With(zerr.New("snapshot file corrupted"), "path", stat.Path)
	}

	return nil
}

// Save stores the current contents of dir under key, replacing any previous
// entry. The snapshot is written to a staging directory first and renamed
// into place once complete, so a failed save never clobbers an entry.
func (s *Store) Save(ctx context.Context, key domain.Key, dir string) error {
	paths, err := collectFiles(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to scan cache directory"), "dir", dir)
	}

	staging, err := os.MkdirTemp(s.root, "staging-")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup

	stats := make([]domain.FileStat, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, rel := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stat, err := snapshotFile(dir, staging, rel)
			if err != nil {
				return err
			}
			stats[i] = stat
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to snapshot cache directory"), "key", key.String())
	}

	if err := writeManifest(staging, key, stats); err != nil {
		return err
	}

	return s.commit(staging, key)
}

func collectFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func snapshotFile(dir, staging, rel string) (domain.FileStat, error) {
	src := filepath.Join(dir, rel)
	dst := filepath.Join(staging, filesDir, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return domain.FileStat{}, zerr.Wrap(err, "failed to create staging subdirectory")
	}

	hash, err := copyFile(src, dst)
	if err != nil {
		return domain.FileStat{}, err
	}

	info, err := os.Stat(dst)
	if err != nil {
		return domain.FileStat{}, zerr.With(zerr.Wrap(err, "failed to stat staged file"), "path", rel)
	}

	return domain.FileStat{Path: rel, Size: info.Size(), Hash: hash}, nil
}

func writeManifest(staging string, key domain.Key, stats []domain.FileStat) error {
	manifest := domain.Manifest{
		Key:       key.String(),
		CreatedAt: time.Now().UTC(),
		Files:     stats,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot manifest")
	}

	//nolint:gosec // Staging path is created by this store
	if err := os.WriteFile(filepath.Join(staging, manifestName), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write snapshot manifest")
	}

	return nil
}

func (s *Store) commit(staging string, key domain.Key) error {
	final := s.entryDir(key)

	if err := os.RemoveAll(final); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove previous entry"), "key", key.String())
	}

	if err := os.Rename(staging, final); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to commit snapshot"), "key", key.String())
	}

	return nil
}

// copyFile copies src to dst preserving the file mode and returns the
// XXHash of the copied content, formatted %016x.
func copyFile(src, dst string) (string, error) {
	in, err := os.Open(src) //nolint:gosec // Paths are controlled by the store
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat file"), "path", src)
	}

	//nolint:gosec // Paths are controlled by the store
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	hasher := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, hasher), in); err != nil {
		_ = out.Close()
		return "", zerr.With(zerr.Wrap(err, "failed to copy file"), "path", src)
	}

	if err := out.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
