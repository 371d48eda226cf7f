package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkspace(t *testing.T, config string) string {
	t.Helper()
	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "memo.yaml"), []byte(config), 0o600)
	require.NoError(t, err)

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})

	t.Setenv("MEMO_STORE_DIR", filepath.Join(tmpDir, "store"))
	return tmpDir
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
	}{
		{
			name: "success with valid config",
			config: `version: "1"
command: ["echo", "hello"]
extraArgs: ""
cacheDir: ".cache"
trackedFiles: ["memo.yaml"]
envFingerprint: "test-env"
`,
			args:         []string{"memo", "run"},
			expectedExit: 0,
		},
		{
			name: "command exit code passes through",
			config: `version: "1"
command: ["sh", "-c", "exit 3"]
extraArgs: ""
cacheDir: ".cache"
trackedFiles: ["memo.yaml"]
envFingerprint: "test-env"
`,
			args:         []string{"memo", "run"},
			expectedExit: 3,
		},
		{
			name: "missing tracked file fails the run",
			config: `version: "1"
command: ["echo", "hello"]
extraArgs: ""
cacheDir: ".cache"
trackedFiles: ["does-not-exist.yaml"]
envFingerprint: "test-env"
`,
			args:         []string{"memo", "run"},
			expectedExit: 1,
		},
		{
			name: "key prints without running",
			config: `version: "1"
command: ["echo", "hello"]
extraArgs: ""
cacheDir: ".cache"
trackedFiles: ["memo.yaml"]
envFingerprint: "test-env"
`,
			args:         []string{"memo", "key"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupWorkspace(t, tt.config)
			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_MissingConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	t.Setenv("MEMO_STORE_DIR", filepath.Join(tmpDir, "store"))
	os.Args = []string{"memo", "run"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
