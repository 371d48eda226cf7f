package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/shell"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewExecutor(mockLogger)
}

func TestExecutor_Execute_Success(t *testing.T) {
	executor := newExecutor(t)

	var stdout bytes.Buffer
	code, err := executor.Execute(context.Background(), []string{"sh", "-c", "echo hello"}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestExecutor_Execute_ExitCodePassthrough(t *testing.T) {
	executor := newExecutor(t)

	code, err := executor.Execute(context.Background(), []string{"sh", "-c", "exit 7"}, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestExecutor_Execute_StderrForwarded(t *testing.T) {
	executor := newExecutor(t)

	var stderr bytes.Buffer
	code, err := executor.Execute(context.Background(), []string{"sh", "-c", "echo oops >&2; exit 1"}, io.Discard, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_EmptyArgv(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	code, err := executor.Execute(context.Background(), nil, io.Discard, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoCommand))
	assert.Equal(t, -1, code)
}

func TestExecutor_Execute_UnknownCommand(t *testing.T) {
	executor := newExecutor(t)

	code, err := executor.Execute(context.Background(), []string{"definitely-not-a-command-xyz"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestExecutor_Execute_Interrupted(t *testing.T) {
	executor := newExecutor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	code, err := executor.Execute(ctx, []string{"sleep", "10"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, -1, code)
}
