package detector_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/detector"
	"go.trai.ch/memo/internal/core/domain"
)

func TestFingerprint_ResolvesExecutable(t *testing.T) {
	tmpDir := t.TempDir()
	tool := filepath.Join(tmpDir, "mytool")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // Test fixture must be executable
	t.Setenv("PATH", tmpDir)

	fp, err := detector.NewEnvFingerprinter().Fingerprint([]string{"mytool", "run"})
	require.NoError(t, err)

	assert.Equal(t, tool, fp)
	assert.True(t, filepath.IsAbs(fp))
}

func TestFingerprint_UnresolvableFallsBackToName(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	fp, err := detector.NewEnvFingerprinter().Fingerprint([]string{"definitely-not-installed"})
	require.NoError(t, err)
	assert.Equal(t, "definitely-not-installed", fp)
}

func TestFingerprint_EmptyArgv(t *testing.T) {
	_, err := detector.NewEnvFingerprinter().Fingerprint(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoCommand))
}
