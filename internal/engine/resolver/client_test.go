package resolver_test

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/core/ports/mocks"
	"go.trai.ch/rebind/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

var (
	newtonsoft   = domain.PackageKey{Name: "Newtonsoft.Json", Version: "13.0.1"}
	newtonsoftID = domain.Identity{Version: "13.0.1.0", PublicKeyToken: "30ad4fe6b2a6aeed", Culture: "neutral"}
)

type fixture struct {
	registry  *mocks.MockPackageRegistry
	inspector *mocks.MockArtifactInspector
	store     *mocks.MockIdentityStore
	telemetry ports.Telemetry
	logger    *mocks.MockLogger
	scratch   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	tel.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).
		AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return &fixture{
		registry:  mocks.NewMockPackageRegistry(ctrl),
		inspector: mocks.NewMockArtifactInspector(ctrl),
		store:     mocks.NewMockIdentityStore(ctrl),
		telemetry: tel,
		logger:    log,
		scratch:   t.TempDir(),
	}
}

func (f *fixture) client(withStore bool) *resolver.Client {
	opts := resolver.Options{Root: "/ws", ScratchDir: f.scratch}
	if withStore {
		opts.Store = f.store
	}
	return resolver.NewClient(f.registry, f.inspector, f.telemetry, f.logger, opts)
}

func ref(key domain.PackageKey, dir string) domain.PackageRef {
	return domain.PackageRef{PackageKey: key, Dir: dir}
}

func TestClient_Memoizes(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().
		Fetch(gomock.Any(), newtonsoft, gomock.Any()).
		DoAndReturn(func(_ context.Context, key domain.PackageKey, outDir string) ([]domain.PackageRef, error) {
			info, err := os.Stat(outDir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
			return []domain.PackageRef{ref(key, outDir)}, nil
		}).
		Times(1)
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(newtonsoftID, nil).Times(1)

	c := f.client(false)
	for range 3 {
		id, ok := c.Resolve(context.Background(), "Newtonsoft.Json", "13.0.1")
		require.True(t, ok)
		assert.Equal(t, newtonsoftID, id)
	}

	id, ok := c.Resolve(context.Background(), "newtonsoft.json", "13.0.1")
	require.True(t, ok)
	assert.Equal(t, newtonsoftID, id)

	assert.Len(t, c.Resolved(), 1)
	assert.Empty(t, c.Skipped())

	entries, err := os.ReadDir(f.scratch)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed")
}

func TestClient_ConcurrentCallsShareOneQuery(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})

	f.registry.EXPECT().
		Fetch(gomock.Any(), newtonsoft, gomock.Any()).
		DoAndReturn(func(_ context.Context, key domain.PackageKey, outDir string) ([]domain.PackageRef, error) {
			<-release
			return []domain.PackageRef{ref(key, outDir)}, nil
		}).
		Times(1)
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(newtonsoftID, nil).Times(1)

	c := f.client(false)

	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Go(func() {
			_, results[i] = c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
		})
	}
	close(release)
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
}

func TestClient_TransitivePackagesAreCached(t *testing.T) {
	f := newFixture(t)
	memory := domain.PackageKey{Name: "System.Memory", Version: "4.5.4"}
	older := domain.PackageKey{Name: "Newtonsoft.Json", Version: "12.0.1"}
	memoryID := domain.Identity{Version: "4.0.1.1", PublicKeyToken: "cc7b13ffcd2ddd51", Culture: "neutral"}

	f.registry.EXPECT().
		Fetch(gomock.Any(), newtonsoft, gomock.Any()).
		Return([]domain.PackageRef{
			ref(newtonsoft, "/tmp/a"),
			ref(memory, "/tmp/b"),
			ref(older, "/tmp/c"),
		}, nil).
		Times(1)
	f.inspector.EXPECT().Inspect(ref(newtonsoft, "/tmp/a")).Return(newtonsoftID, nil)
	f.inspector.EXPECT().Inspect(ref(memory, "/tmp/b")).Return(memoryID, nil)

	c := f.client(false)

	_, ok := c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	require.True(t, ok)

	id, ok := c.Resolve(context.Background(), memory.Name, memory.Version)
	require.True(t, ok)
	assert.Equal(t, memoryID, id)
}

func TestClient_NegativeCache(t *testing.T) {
	f := newFixture(t)
	missing := domain.PackageKey{Name: "Missing.Package", Version: "9.9.9"}

	f.registry.EXPECT().
		Fetch(gomock.Any(), missing, gomock.Any()).
		Return(nil, errors.New("package registry query failed")).
		Times(1)

	c := f.client(false)

	for range 3 {
		_, ok := c.Resolve(context.Background(), missing.Name, missing.Version)
		assert.False(t, ok)
	}
	assert.Equal(t, []domain.PackageKey{missing}, c.Skipped())
}

func TestClient_VersionMismatchIsUnresolved(t *testing.T) {
	f := newFixture(t)
	requested := domain.PackageKey{Name: "Serilog", Version: "2.10.0"}

	f.registry.EXPECT().
		Fetch(gomock.Any(), requested, gomock.Any()).
		Return([]domain.PackageRef{ref(domain.PackageKey{Name: "Serilog", Version: "3.0.0"}, "/tmp/s")}, nil)

	c := f.client(false)

	_, ok := c.Resolve(context.Background(), requested.Name, requested.Version)
	assert.False(t, ok)
	assert.Equal(t, []domain.PackageKey{requested}, c.Skipped())
}

func TestClient_InspectFailureIsUnresolved(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().
		Fetch(gomock.Any(), newtonsoft, gomock.Any()).
		Return([]domain.PackageRef{ref(newtonsoft, "/tmp/n")}, nil)
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(domain.Identity{}, errors.New("assembly not found in package"))

	c := f.client(false)

	_, ok := c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	assert.False(t, ok)
}

func TestClient_TransitiveNeverOverridesNegative(t *testing.T) {
	f := newFixture(t)
	memory := domain.PackageKey{Name: "System.Memory", Version: "4.5.4"}

	gomock.InOrder(
		f.registry.EXPECT().Fetch(gomock.Any(), memory, gomock.Any()).Return(nil, errors.New("timeout")),
		f.registry.EXPECT().Fetch(gomock.Any(), newtonsoft, gomock.Any()).Return([]domain.PackageRef{
			ref(newtonsoft, "/tmp/n"),
			ref(memory, "/tmp/m"),
		}, nil),
	)
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(newtonsoftID, nil).Times(2)

	c := f.client(false)

	_, ok := c.Resolve(context.Background(), memory.Name, memory.Version)
	require.False(t, ok)
	_, ok = c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	require.True(t, ok)

	_, ok = c.Resolve(context.Background(), memory.Name, memory.Version)
	assert.False(t, ok)
	assert.Equal(t, []domain.PackageKey{memory}, c.Skipped())
}

func TestClient_PersistentStoreHit(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Get("/ws", newtonsoft).Return(newtonsoftID, true, nil)

	c := f.client(true)

	id, ok := c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	require.True(t, ok)
	assert.Equal(t, newtonsoftID, id)

	// Second call is served from memory.
	_, ok = c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	assert.True(t, ok)
}

func TestClient_PersistentStoreMissQueriesAndStores(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Get("/ws", newtonsoft).Return(domain.Identity{}, false, nil)
	f.registry.EXPECT().
		Fetch(gomock.Any(), newtonsoft, gomock.Any()).
		Return([]domain.PackageRef{ref(newtonsoft, "/tmp/n")}, nil)
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(newtonsoftID, nil)
	f.store.EXPECT().Put("/ws", newtonsoft, newtonsoftID).Return(nil)

	c := f.client(true)

	id, ok := c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	require.True(t, ok)
	assert.Equal(t, newtonsoftID, id)
}

func TestClient_PersistentStoreErrorFallsBackToQuery(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Get("/ws", newtonsoft).Return(domain.Identity{}, false, errors.New("failed to read identity cache"))
	f.registry.EXPECT().
		Fetch(gomock.Any(), newtonsoft, gomock.Any()).
		Return([]domain.PackageRef{ref(newtonsoft, "/tmp/n")}, nil)
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(newtonsoftID, nil)
	f.store.EXPECT().Put("/ws", newtonsoft, newtonsoftID).Return(errors.New("disk full"))

	c := f.client(true)

	_, ok := c.Resolve(context.Background(), newtonsoft.Name, newtonsoft.Version)
	assert.True(t, ok)
}
