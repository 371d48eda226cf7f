package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/app"
	_ "go.trai.ch/memo/internal/wiring"
)

// TestGraftWiring resolves the full component graph. A missing node
// registration or a wrong dependency ID fails here rather than at startup.
func TestGraftWiring(t *testing.T) {
	t.Setenv("MEMO_STORE_DIR", t.TempDir())

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
