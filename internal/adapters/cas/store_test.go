package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/cas"
	"go.trai.ch/rebind/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	key := domain.PackageKey{Name: "Newtonsoft.Json", Version: "13.0.1"}
	id := domain.Identity{Version: "13.0.0.0", PublicKeyToken: "30ad4fe6b2a6aeed", Culture: "neutral"}

	require.NoError(t, store.Put(root, key, id))

	got, ok, err := store.Get(root, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got)

	// Names are case-insensitive.
	got, ok, err = store.Get(root, domain.PackageKey{Name: "newtonsoft.json", Version: "13.0.1"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestStore_Miss(t *testing.T) {
	store := cas.NewStore()

	_, ok, err := store.Get(t.TempDir(), domain.PackageKey{Name: "A", Version: "1.0"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Persistence(t *testing.T) {
	root := t.TempDir()
	key := domain.PackageKey{Name: "Serilog", Version: "2.12.0"}
	id := domain.Identity{Version: "2.0.0.0", PublicKeyToken: "24c2f752a8e58a10", Culture: "neutral"}

	require.NoError(t, cas.NewStore().Put(root, key, id))

	got, ok, err := cas.NewStore().Get(root, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got)

	entries, err := os.ReadDir(domain.DefaultIdentityCachePath(root))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
}

func TestStore_CorruptRecord(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()
	key := domain.PackageKey{Name: "A", Version: "1.0"}

	require.NoError(t, store.Put(root, key, domain.Identity{Version: "1.0.0.0"}))

	entries, err := os.ReadDir(domain.DefaultIdentityCachePath(root))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	path := filepath.Join(domain.DefaultIdentityCachePath(root), entries[0].Name())
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, _, err = store.Get(root, key)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read identity cache")
}
