package ports

import "go.trai.ch/memo/internal/core/domain"

// Keyer defines the interface for deriving cache keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=keyer.go -destination=mocks/mock_keyer.go -package=mocks
type Keyer interface {
	// ComputeKey derives the cache key from the namespace, the environment
	// fingerprint, and the contents of the tracked files in sequence
	// order. Deterministic, no side effects.
	//
	// Returns domain.ErrInputNotFound if a tracked file is missing.
	ComputeKey(namespace, envFingerprint string, trackedFiles []string) (domain.Key, error)
}
