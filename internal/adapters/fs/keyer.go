package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Keyer = (*Keyer)(nil)

// Keyer derives cache keys from tracked file contents.
type Keyer struct {
	walker *Walker
}

// NewKeyer creates a new Keyer.
func NewKeyer(walker *Walker) *Keyer {
	return &Keyer{walker: walker}
}

// ComputeKey concatenates the namespace, the environment fingerprint, and
// the hex SHA-256 over the contents of every tracked file in sequence
// order. A tracked directory contributes the contents of its files in walk
// order.
func (k *Keyer) ComputeKey(namespace, envFingerprint string, trackedFiles []string) (domain.Key, error) {
	digest := sha256.New()

	for _, path := range trackedFiles {
		if err := k.hashPath(path, digest); err != nil {
			return "", err
		}
	}

	contentHash := hex.EncodeToString(digest.Sum(nil))
	return domain.NewKey(namespace, envFingerprint, contentHash), nil
}

func (k *Keyer) hashPath(path string, digest io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrInputNotFound, "cannot hash tracked file"), "path", path)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat tracked file"), "path", path)
	}

	if info.IsDir() {
		for filePath := range k.walker.WalkFiles(path) {
			if err := hashFile(filePath, digest); err != nil {
				return err
			}
		}
		return nil
	}

	return hashFile(path, digest)
}

func hashFile(path string, digest io.Writer) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open tracked file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(digest, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash tracked file"), "path", path)
	}

	return nil
}
