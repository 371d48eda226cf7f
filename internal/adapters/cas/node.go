package cas

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotStore, error) {
			// MEMO_STORE_DIR overrides the default user cache location.
			store, err := NewStore(os.Getenv("MEMO_STORE_DIR"))
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
