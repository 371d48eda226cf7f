// Package detector resolves the environment fingerprint included in cache
// keys.
package detector

import (
	"os/exec"
	"path/filepath"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

var _ ports.Fingerprinter = (*EnvFingerprinter)(nil)

// EnvFingerprinter derives the fingerprint from the installation that will
// run the command: the absolute path of the resolved executable. Two
// installations of the same tool (different interpreter, different prefix)
// produce different fingerprints and therefore different cache keys.
type EnvFingerprinter struct{}

// NewEnvFingerprinter creates a new EnvFingerprinter.
func NewEnvFingerprinter() *EnvFingerprinter {
	return &EnvFingerprinter{}
}

// Fingerprint resolves argv[0] against PATH and returns its absolute path.
// When the command cannot be resolved the bare name is returned; execution
// will fail later with a precise error, and the key stays deterministic.
func (f *EnvFingerprinter) Fingerprint(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", domain.ErrNoCommand
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return argv[0], nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil //nolint:nilerr // Relative path is still a usable fingerprint
	}

	return abs, nil
}
