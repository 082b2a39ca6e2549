package nuget_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/nuget"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestParseInstallOutput(t *testing.T) {
	output := `Feeds used:
  https://api.nuget.org/v3/index.json

Installing package 'Serilog.Sinks.File' to '/tmp/x'.
Successfully installed 'Serilog.Sinks.File 5.0.0' to /tmp/x
Package "Serilog.2.10.0" is already installed.
Added package 'System.Memory.4.5.4' to folder '/tmp/x'
Added package 'System.Memory.4.5.4' to folder '/tmp/x'
Added package 'Foo.Bar.1.0.0-beta.2' to folder '/tmp/x'
`

	refs := nuget.ParseInstallOutput(output, "/tmp/x")

	require.Len(t, refs, 4)
	assert.Equal(t, domain.PackageKey{Name: "Serilog.Sinks.File", Version: "5.0.0"}, refs[0].PackageKey)
	assert.Equal(t, filepath.Join("/tmp/x", "Serilog.Sinks.File.5.0.0"), refs[0].Dir)
	assert.Equal(t, domain.PackageKey{Name: "Serilog", Version: "2.10.0"}, refs[1].PackageKey)
	assert.Equal(t, domain.PackageKey{Name: "System.Memory", Version: "4.5.4"}, refs[2].PackageKey)
	assert.Equal(t, domain.PackageKey{Name: "Foo.Bar", Version: "1.0.0-beta.2"}, refs[3].PackageKey)
}

func TestRegistry_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)

	outDir := t.TempDir()
	key := domain.PackageKey{Name: "Newtonsoft.Json", Version: "13.0.1"}

	executor.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cmd ports.Command, stdout, _ io.Writer) error {
			assert.Equal(t, []string{
				"/opt/nuget", "install", "Newtonsoft.Json",
				"-Version", "13.0.1",
				"-OutputDirectory", outDir,
				"-NonInteractive", "-DirectDownload",
				"-Source", "https://feed.example/v3/index.json",
			}, cmd.Args)
			assert.Equal(t, outDir, cmd.Dir)

			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			require.NoError(t, os.MkdirAll(filepath.Join(outDir, "Newtonsoft.Json.13.0.1"), 0o750))
			_, _ = io.WriteString(stdout, "Successfully installed 'Newtonsoft.Json 13.0.1' to "+outDir+"\n")
			// Listed but never extracted.
			_, _ = io.WriteString(stdout, "Successfully installed 'Ghost 1.0.0' to "+outDir+"\n")
			return nil
		})

	registry := nuget.NewRegistry(executor, log, domain.RegistryConfig{
		Command: "/opt/nuget",
		Source:  "https://feed.example/v3/index.json",
		Timeout: time.Minute,
	})

	refs, err := registry.Fetch(context.Background(), key, outDir)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, key, refs[0].PackageKey)
}

func TestRegistry_Fetch_FallsBackToExpectedFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	outDir := t.TempDir()
	key := domain.PackageKey{Name: "A", Version: "1.0.0"}

	executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Command, _, _ io.Writer) error {
			return os.MkdirAll(filepath.Join(outDir, "A.1.0.0"), 0o750)
		})

	refs, err := nuget.NewRegistry(executor, nil, domain.RegistryConfig{}).Fetch(context.Background(), key, outDir)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, filepath.Join(outDir, "A.1.0.0"), refs[0].Dir)
}

func TestRegistry_Fetch_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1"))

	key := domain.PackageKey{Name: "Missing", Version: "9.9.9"}
	refs, err := nuget.NewRegistry(executor, nil, domain.RegistryConfig{}).Fetch(context.Background(), key, t.TempDir())

	require.Error(t, err)
	assert.Empty(t, refs)
	assert.ErrorContains(t, err, "package registry query failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Missing", zErr.Metadata()["package"])
	assert.Equal(t, "9.9.9", zErr.Metadata()["version"])
}

func TestRegistry_Fetch_StreamsToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	var vertexOut, vertexErr bufferWriter
	vertex.EXPECT().Stdout().Return(&vertexOut)
	vertex.EXPECT().Stderr().Return(&vertexErr)

	executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Command, stdout, stderr io.Writer) error {
			_, _ = io.WriteString(stdout, "hello\n")
			_, _ = io.WriteString(stderr, "warn\n")
			return nil
		})

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	_, err := nuget.NewRegistry(executor, nil, domain.RegistryConfig{}).
		Fetch(ctx, domain.PackageKey{Name: "A", Version: "1.0"}, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "hello\n", string(vertexOut))
	assert.Equal(t, "warn\n", string(vertexErr))
}

func TestFactory_NewRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := nuget.NewFactory(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl))

	assert.NotNil(t, factory.NewRegistry(domain.RegistryConfig{Command: "nuget"}))
}

type bufferWriter []byte

func (b *bufferWriter) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}
