// Package domain holds the core types of the memo runner.
package domain

import "strings"

// DefaultExtraArgs is used when the configuration does not set extraArgs.
const DefaultExtraArgs = "--all-files"

// RunConfig holds the recognized options for a cached run.
type RunConfig struct {
	// Command is the wrapped command and its fixed arguments.
	Command []string
	// ExtraArgs is forwarded verbatim as trailing arguments.
	ExtraArgs string
	// CacheNamespace is the leading segment of the cache key.
	CacheNamespace string
	// CacheDir is the directory restored from and saved to the store.
	CacheDir string
	// TrackedFiles contribute their content to the cache key, in order.
	TrackedFiles []string
	// EnvFingerprint discriminates cache entries between tool
	// installations. Empty means auto-detect.
	EnvFingerprint string
}

// Argv returns the full argument vector: the configured command followed
// by the extra arguments split on whitespace.
func (c *RunConfig) Argv() []string {
	argv := make([]string, 0, len(c.Command)+1)
	argv = append(argv, c.Command...)
	argv = append(argv, strings.Fields(c.ExtraArgs)...)
	return argv
}
