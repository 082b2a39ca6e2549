package lockfile_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/lockfile"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/zerr"
)

const assetsJSON = `{
  "version": 3,
  "targets": {
    ".NETFramework,Version=v4.8": {
      "Newtonsoft.Json/13.0.1": {
        "type": "package",
        "compile": {"lib/net45/Newtonsoft.Json.dll": {}}
      },
      "Serilog.Sinks.File/5.0.0": {
        "type": "package",
        "dependencies": {"Serilog": "2.10.0", "System.Memory": "[4.5.4, )"}
      },
      "Shared/1.0.0": {
        "type": "project",
        "dependencies": {"Newtonsoft.Json": "12.0.3"}
      }
    }
  },
  "libraries": {}
}`

const packagesLockJSON = `{
  "version": 1,
  "dependencies": {
    ".NETFramework,Version=v4.7.2": {
      "Newtonsoft.Json": {
        "type": "Direct",
        "requested": "[12.0.3, )",
        "resolved": "12.0.3",
        "contentHash": "abc"
      },
      "Serilog": {
        "type": "Transitive",
        "resolved": "2.10.0",
        "dependencies": {"System.Memory": "4.5.4"}
      },
      "shared": {
        "type": "Project"
      }
    }
  }
}`

func sortEntries(entries []domain.LockEntry) {
	slices.SortFunc(entries, func(a, b domain.LockEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func TestParse_Assets(t *testing.T) {
	lf, err := lockfile.Parse([]byte(assetsJSON))
	require.NoError(t, err)

	assert.Equal(t, 3, lf.Version)
	entries := lf.Targets[".NETFramework,Version=v4.8"]
	require.Len(t, entries, 3)
	sortEntries(entries)

	assert.Equal(t, domain.LockEntry{Name: "Newtonsoft.Json", Version: "13.0.1", Kind: "package"}, entries[0])
	assert.Equal(t, "Serilog.Sinks.File", entries[1].Name)
	assert.Equal(t, "[4.5.4, )", entries[1].Dependencies["System.Memory"])
	assert.Equal(t, "project", entries[2].Kind)
	assert.False(t, entries[2].IsPackage())
}

func TestParse_PackagesLock(t *testing.T) {
	lf, err := lockfile.Parse([]byte(packagesLockJSON))
	require.NoError(t, err)

	entries := lf.Targets[".NETFramework,Version=v4.7.2"]
	require.Len(t, entries, 3)
	sortEntries(entries)

	assert.Equal(t, "12.0.3", entries[0].Version)
	assert.True(t, entries[0].IsPackage())
	assert.Equal(t, "4.5.4", entries[1].Dependencies["System.Memory"])
	assert.Equal(t, "project", entries[2].Kind)
}

func TestParse_ByteOrderMark(t *testing.T) {
	lf, err := lockfile.Parse(append([]byte("\xef\xbb\xbf"), assetsJSON...))
	require.NoError(t, err)
	assert.Len(t, lf.Targets, 1)
}

func TestParse_Invalid(t *testing.T) {
	_, err := lockfile.Parse([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse lockfile")

	_, err = lockfile.Parse([]byte(`{"version": 3}`))
	require.Error(t, err)

	_, err = lockfile.Parse([]byte(`{"targets": {"net48": {"NoSlash": {"type": "package"}}}}`))
	require.Error(t, err)
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.assets.json")
	require.NoError(t, os.WriteFile(path, []byte(assetsJSON), 0o600))

	lf, err := lockfile.NewReader().Read(path)
	require.NoError(t, err)
	assert.Len(t, lf.Targets, 1)
}

func TestReader_Read_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.assets.json")

	_, err := lockfile.NewReader().Read(path)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}
