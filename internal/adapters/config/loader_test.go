package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `version: "1"
command: [pre-commit, run, --show-diff-on-failure, --color=always]
extraArgs: "--all-files"
cacheNamespace: pre-commit-3
cacheDir: /tmp/pre-commit-cache
trackedFiles:
  - .pre-commit-config.yaml
envFingerprint: /usr/bin/python3.11
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"pre-commit", "run", "--show-diff-on-failure", "--color=always"}, cfg.Command)
	assert.Equal(t, "--all-files", cfg.ExtraArgs)
	assert.Equal(t, "pre-commit-3", cfg.CacheNamespace)
	assert.Equal(t, "/tmp/pre-commit-cache", cfg.CacheDir)
	assert.Equal(t, []string{".pre-commit-config.yaml"}, cfg.TrackedFiles)
	assert.Equal(t, "/usr/bin/python3.11", cfg.EnvFingerprint)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `command: [pre-commit, run]
cacheDir: /tmp/cache
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultExtraArgs, cfg.ExtraArgs)
	assert.Equal(t, "pre-commit", cfg.CacheNamespace)
	assert.Empty(t, cfg.EnvFingerprint)
}

func TestLoad_ExplicitEmptyExtraArgs(t *testing.T) {
	path := writeConfig(t, `command: [golangci-lint, run]
extraArgs: ""
cacheDir: /tmp/cache
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	// An explicit empty string disables the default.
	assert.Empty(t, cfg.ExtraArgs)
}

func TestLoad_MissingCommand(t *testing.T) {
	path := writeConfig(t, `cacheDir: /tmp/cache
`)

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoCommand))
}

func TestLoad_MissingCacheDir(t *testing.T) {
	path := writeConfig(t, `command: [true]
`)

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_TildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `command: [pre-commit, run]
cacheDir: ~/.cache/pre-commit
`)

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".cache", "pre-commit"), cfg.CacheDir)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := &config.FileConfigLoader{}
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "command: [unbalanced")

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(path)
	require.Error(t, err)
}
