package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	progrockadapter "go.trai.ch/memo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Progress recording is opt-in; the default keeps the wrapped
			// command's output as the only thing on screen.
			if os.Getenv("MEMO_PROGRESS") != "" {
				return progrockadapter.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
