package shell_test

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/shell"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecutor_Run_MultiLineOutput(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("line1").Times(1)
	mockLogger.EXPECT().Debug("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	var stdout bytes.Buffer
	err := executor.Run(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}, &stdout, nil)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", stdout.String())
}

func TestExecutor_Run_FragmentedOutput(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Run(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "printf part1; sleep 0.1; printf part2"},
	}, nil, nil)
	require.NoError(t, err)
}

func TestExecutor_Run_Env(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	var stdout bytes.Buffer
	err := shell.NewExecutor(mockLogger).Run(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo $REBIND_TEST"},
		Env:  []string{"REBIND_TEST=hello"},
	}, &stdout, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestExecutor_Run_Failure(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	err := shell.NewExecutor(mockLogger).Run(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "echo boom >&2; exit 3"},
	}, nil, nil)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "boom", meta["stderr"])
}

func TestExecutor_Run_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	require.NoError(t, executor.Run(context.Background(), ports.Command{}, nil, nil))
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/root"},
		[]string{"HOME=/tmp", "NUGET_PACKAGES=/cache"},
	)

	assert.Equal(t, []string{"PATH=/usr/bin", "HOME=/tmp", "NUGET_PACKAGES=/cache"}, env)
}
