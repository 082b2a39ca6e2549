package assembly

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // public key tokens are defined over SHA-1
	"encoding/hex"
	"fmt"

	peparser "github.com/saferwall/pe"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	stringsStream = "#Strings"
	blobStream    = "#Blob"

	assemblyFlagPublicKey = 0x0001
)

// Info is the manifest of an assembly.
type Info struct {
	Name     string
	Identity domain.Identity
}

// manifest reads the identity from the Assembly table of parsed CLR metadata.
func manifest(clr *peparser.CLRData) (Info, error) {
	table, ok := clr.MetadataTables[peparser.Assembly]
	if !ok || table == nil {
		return Info{}, zerr.With(domain.ErrInvalidAssembly, "reason", "no assembly manifest")
	}
	rows, ok := table.Content.([]peparser.AssemblyTableRow)
	if !ok || len(rows) == 0 {
		return Info{}, zerr.With(domain.ErrInvalidAssembly, "reason", "no assembly manifest")
	}
	row := rows[0]

	strs := clr.MetadataStreams[stringsStream]
	name, err := heapString(strs, row.Name)
	if err != nil {
		return Info{}, err
	}
	culture, err := heapString(strs, row.Culture)
	if err != nil {
		return Info{}, err
	}
	if culture == "" {
		culture = domain.NeutralCulture
	}

	id := domain.Identity{
		Version: fmt.Sprintf("%d.%d.%d.%d", row.MajorVersion, row.MinorVersion, row.BuildNumber, row.RevisionNumber),
		Culture: culture,
	}
	if row.Flags&assemblyFlagPublicKey != 0 && row.PublicKey != 0 {
		key, err := heapBlob(clr.MetadataStreams[blobStream], row.PublicKey)
		if err != nil {
			return Info{}, err
		}
		if len(key) > 0 {
			id.PublicKeyToken = publicKeyToken(key)
		}
	}

	return Info{Name: name, Identity: id}, nil
}

// publicKeyToken is the last eight bytes of the key's SHA-1, reversed.
func publicKeyToken(key []byte) string {
	sum := sha1.Sum(key) //nolint:gosec // required by the strong-name format
	token := make([]byte, 8)
	for i := range 8 {
		token[i] = sum[len(sum)-1-i]
	}
	return hex.EncodeToString(token)
}

// heapString reads a NUL-terminated entry of the #Strings heap.
func heapString(heap []byte, index uint32) (string, error) {
	if int(index) >= len(heap) {
		return "", truncated(stringsStream, index)
	}
	end := bytes.IndexByte(heap[index:], 0)
	if end < 0 {
		return "", truncated(stringsStream, index)
	}
	return string(heap[index : int(index)+end]), nil
}

// heapBlob reads a length-prefixed entry of the #Blob heap.
func heapBlob(heap []byte, index uint32) ([]byte, error) {
	off := int(index)
	if off >= len(heap) {
		return nil, truncated(blobStream, index)
	}

	b0 := heap[off]
	var n, hdr int
	switch {
	case b0&0x80 == 0:
		n, hdr = int(b0), 1
	case b0&0xC0 == 0x80 && off+2 <= len(heap):
		n, hdr = int(b0&0x3F)<<8|int(heap[off+1]), 2
	case b0&0xE0 == 0xC0 && off+4 <= len(heap):
		n = int(b0&0x1F)<<24 | int(heap[off+1])<<16 | int(heap[off+2])<<8 | int(heap[off+3])
		hdr = 4
	default:
		return nil, truncated(blobStream, index)
	}

	start := off + hdr
	if start+n > len(heap) {
		return nil, truncated(blobStream, index)
	}
	return heap[start : start+n], nil
}

func truncated(stream string, index uint32) error {
	return zerr.With(zerr.With(domain.ErrInvalidAssembly, "reason", "heap index out of range"), stream, index)
}
