package assembly_test

import (
	"os"
	"path/filepath"
	"testing"

	peparser "github.com/saferwall/pe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/assembly"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// ecmaKey is the placeholder public key used by framework assemblies.
var ecmaKey = []byte{0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0}

func clrData(row peparser.AssemblyTableRow, strs, blobs []byte) *peparser.CLRData {
	return &peparser.CLRData{
		MetadataStreams: map[string][]byte{
			"#Strings": strs,
			"#Blob":    blobs,
		},
		MetadataTables: map[int]*peparser.MetadataTable{
			peparser.Assembly: {Name: "Assembly", CountCols: 1, Content: []peparser.AssemblyTableRow{row}},
		},
	}
}

func TestManifest_SignedAssembly(t *testing.T) {
	clr := clrData(peparser.AssemblyTableRow{
		HashAlgId:    0x8004,
		MajorVersion: 13,
		Flags:        0x0001,
		PublicKey:    1,
		Name:         1,
	}, []byte("\x00Newtonsoft.Json\x00"), append([]byte{0, byte(len(ecmaKey))}, ecmaKey...))

	info, err := assembly.Manifest(clr)
	require.NoError(t, err)

	assert.Equal(t, "Newtonsoft.Json", info.Name)
	assert.Equal(t, domain.Identity{
		Version:        "13.0.0.0",
		PublicKeyToken: "b77a5c561934e089",
		Culture:        "neutral",
	}, info.Identity)
}

func TestManifest_UnsignedWithCulture(t *testing.T) {
	clr := clrData(peparser.AssemblyTableRow{
		MajorVersion:   4,
		MinorVersion:   5,
		BuildNumber:    6,
		RevisionNumber: 7,
		Name:           1,
		Culture:        11,
	}, []byte("\x00Satellite\x00de-DE\x00"), []byte{0})

	info, err := assembly.Manifest(clr)
	require.NoError(t, err)

	assert.Equal(t, "Satellite", info.Name)
	assert.Equal(t, "4.5.6.7", info.Identity.Version)
	assert.Empty(t, info.Identity.PublicKeyToken)
	assert.Equal(t, "de-DE", info.Identity.Culture)
}

func TestManifest_LongBlobLength(t *testing.T) {
	key := make([]byte, 160)
	key[0] = 0x06
	blobs := append([]byte{0, 0x80, byte(len(key))}, key...)

	clr := clrData(peparser.AssemblyTableRow{Flags: 0x0001, PublicKey: 1, Name: 1}, []byte("\x00Big\x00"), blobs)

	info, err := assembly.Manifest(clr)
	require.NoError(t, err)
	assert.Equal(t, assembly.PublicKeyToken(key), info.Identity.PublicKeyToken)
}

func TestManifest_NameOutOfRange(t *testing.T) {
	clr := clrData(peparser.AssemblyTableRow{Name: 40}, []byte("\x00Short\x00"), []byte{0})

	_, err := assembly.Manifest(clr)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid assembly metadata")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "heap index out of range", zErr.Metadata()["reason"])
}

func TestManifest_TruncatedKey(t *testing.T) {
	clr := clrData(peparser.AssemblyTableRow{Flags: 0x0001, PublicKey: 1, Name: 1}, []byte("\x00A\x00"), []byte{0, 16, 1, 2})

	_, err := assembly.Manifest(clr)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid assembly metadata")
}

func TestManifest_NoManifest(t *testing.T) {
	clr := &peparser.CLRData{
		MetadataTables: map[int]*peparser.MetadataTable{},
	}

	_, err := assembly.Manifest(clr)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "no assembly manifest", zErr.Metadata()["reason"])
}

func TestPublicKeyToken(t *testing.T) {
	assert.Equal(t, "b77a5c561934e089", assembly.PublicKeyToken(ecmaKey))
}

func TestFindAssembly(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"lib/net45/Newtonsoft.Json.dll",
		"lib/netstandard2.0/newtonsoft.json.dll",
		"lib/netstandard2.0/Other.dll",
		"tools/Newtonsoft.Json.dll",
	} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	got, err := assembly.FindAssembly(dir, "Newtonsoft.Json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lib", "netstandard2.0", "newtonsoft.json.dll"), got)
}

func TestFindAssembly_FallsBackOutsideLib(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runtimes", "win", "Native.Wrapper.dll")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := assembly.FindAssembly(dir, "Native.Wrapper")
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestInspector_Inspect_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	inspector := assembly.NewInspector(mocks.NewMockLogger(ctrl))

	ref := domain.PackageRef{
		PackageKey: domain.PackageKey{Name: "Missing", Version: "1.0.0"},
		Dir:        t.TempDir(),
	}

	_, err := inspector.Inspect(ref)
	require.Error(t, err)
	assert.ErrorContains(t, err, "assembly not found in package")
}

func TestInspector_Inspect_NotPE(t *testing.T) {
	ctrl := gomock.NewController(t)
	inspector := assembly.NewInspector(mocks.NewMockLogger(ctrl))

	dir := t.TempDir()
	path := filepath.Join(dir, "lib", "net45", "Broken.dll")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("not a pe file"), 0o600))

	_, err := inspector.Inspect(domain.PackageRef{
		PackageKey: domain.PackageKey{Name: "Broken", Version: "1.0.0"},
		Dir:        dir,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid assembly metadata")
}
