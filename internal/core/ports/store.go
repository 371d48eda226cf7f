package ports

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
)

// SnapshotStore defines the interface for persisting directory snapshots
// under a cache key.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Restore materializes the snapshot stored under key into dir.
	// On a miss it leaves dir as-is, creating it empty if absent, and
	// returns false with a nil error.
	Restore(ctx context.Context, key domain.Key, dir string) (bool, error)

	// Save stores the current contents of dir under key, replacing any
	// previous entry. Last write wins.
	Save(ctx context.Context, key domain.Key, dir string) error
}
