package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/telemetry"
	"go.trai.ch/memo/internal/adapters/telemetry/progrock"
)

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx, vertex := rec.Record(context.Background(), "restore")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	// All operations are safe no-ops.
	vertex.Log("hit")
	vertex.Done(nil)
	assert.NoError(t, rec.Close())
}

func TestProgrockRecorder(t *testing.T) {
	rec := progrock.New()

	_, vertex := rec.Record(context.Background(), "run pre-commit")
	require.NotNil(t, vertex)

	vertex.Log("cache miss")
	vertex.Done(nil)
	assert.NoError(t, rec.Close())
}
