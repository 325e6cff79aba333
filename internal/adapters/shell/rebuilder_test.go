package shell_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/testbridge/internal/adapters/shell"
	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRebuilder(t *testing.T) (*shell.Rebuilder, *mocks.MockLogger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var stdout, stderr bytes.Buffer
	r := shell.NewRebuilder(mockLogger).WithStdio(strings.NewReader(""), &stdout, &stderr)
	return r, mockLogger, &stdout, &stderr
}

func TestRebuilder_Rebuild_Success(t *testing.T) {
	r, _, stdout, stderr := newRebuilder(t)

	outcome := r.Rebuild(context.Background(), domain.RebuildCommand{
		Args:    []string{"sh", "-c", "echo built; echo warn >&2"},
		Dir:     t.TempDir(),
		Timeout: 10 * time.Second,
	})

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, 0, outcome.ExitCode)
	require.NoError(t, outcome.Err)
	assert.Equal(t, "built\n", stdout.String())
	assert.Equal(t, "warn\n", stderr.String())
}

func TestRebuilder_Rebuild_WorkingDir(t *testing.T) {
	r, _, stdout, _ := newRebuilder(t)
	dir := t.TempDir()

	outcome := r.Rebuild(context.Background(), domain.RebuildCommand{
		Args:    []string{"sh", "-c", "ls"},
		Dir:     dir,
		Timeout: 10 * time.Second,
	})
	require.True(t, outcome.Succeeded())
	assert.Empty(t, stdout.String())
}

func TestRebuilder_Rebuild_NonZeroExit(t *testing.T) {
	r, mockLogger, _, _ := newRebuilder(t)
	mockLogger.EXPECT().Warn("rebuild exited with code 3").Times(1)

	outcome := r.Rebuild(context.Background(), domain.RebuildCommand{
		Args:    []string{"sh", "-c", "exit 3"},
		Timeout: 10 * time.Second,
	})

	assert.False(t, outcome.Succeeded())
	assert.Equal(t, 3, outcome.ExitCode)
	assert.False(t, outcome.TimedOut)
	require.NoError(t, outcome.Err)
}

func TestRebuilder_Rebuild_Timeout(t *testing.T) {
	r, mockLogger, _, _ := newRebuilder(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	start := time.Now()
	outcome := r.Rebuild(context.Background(), domain.RebuildCommand{
		Args:    []string{"sleep", "30"},
		Timeout: 100 * time.Millisecond,
	})

	assert.True(t, outcome.TimedOut)
	assert.False(t, outcome.Succeeded())
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRebuilder_Rebuild_StartFailure(t *testing.T) {
	r, mockLogger, _, _ := newRebuilder(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	outcome := r.Rebuild(context.Background(), domain.RebuildCommand{
		Args:    []string{"testbridge-no-such-command-xyz"},
		Timeout: time.Second,
	})

	require.Error(t, outcome.Err)
	assert.Contains(t, outcome.Err.Error(), domain.ErrRebuildStartFailed.Error())
	assert.Equal(t, -1, outcome.ExitCode)
	assert.False(t, outcome.Succeeded())
}

func TestRebuilder_Rebuild_EmptyCommand(t *testing.T) {
	r, _, _, _ := newRebuilder(t)

	outcome := r.Rebuild(context.Background(), domain.RebuildCommand{})
	require.ErrorIs(t, outcome.Err, domain.ErrEmptyRebuildCommand)
	assert.False(t, outcome.Succeeded())
}

func TestNewRebuilder_ChildStdoutGoesToStderr(t *testing.T) {
	r := shell.NewRebuilder(nil)
	assert.Same(t, os.Stderr, shell.StdoutOf(r))
}
