// Package config provides the configuration loader for memo.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Memofile represents the structure of the memo.yaml configuration file.
type Memofile struct {
	Version        string   `yaml:"version"`
	Command        []string `yaml:"command"`
	ExtraArgs      *string  `yaml:"extraArgs"`
	CacheNamespace string   `yaml:"cacheNamespace"`
	CacheDir       string   `yaml:"cacheDir"`
	TrackedFiles   []string `yaml:"trackedFiles"`
	EnvFingerprint string   `yaml:"envFingerprint"`
}

// Load reads the configuration file at the given path and returns the run
// configuration with defaults applied.
func (l *FileConfigLoader) Load(path string) (*domain.RunConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var memofile Memofile
	if err := yaml.Unmarshal(data, &memofile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return buildConfig(&memofile)
}

func buildConfig(memofile *Memofile) (*domain.RunConfig, error) {
	if len(memofile.Command) == 0 {
		return nil, domain.ErrNoCommand
	}

	namespace := memofile.CacheNamespace
	if namespace == "" {
		namespace = filepath.Base(memofile.Command[0])
	}

	if memofile.CacheDir == "" {
		return nil, zerr.New("cacheDir must be set")
	}
	cacheDir, err := expandHome(memofile.CacheDir)
	if err != nil {
		return nil, err
	}

	// extraArgs distinguishes unset (default applies) from explicit empty.
	extraArgs := domain.DefaultExtraArgs
	if memofile.ExtraArgs != nil {
		extraArgs = *memofile.ExtraArgs
	}

	return &domain.RunConfig{
		Command:        memofile.Command,
		ExtraArgs:      extraArgs,
		CacheNamespace: namespace,
		CacheDir:       cacheDir,
		TrackedFiles:   memofile.TrackedFiles,
		EnvFingerprint: memofile.EnvFingerprint,
	}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve home directory")
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
