// Package cas implements the persisted identity cache.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IdentityStore = (*Store)(nil)

// record is the on-disk form of one cached identity.
type record struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	AssemblyVer    string `json:"assemblyVersion"`
	PublicKeyToken string `json:"publicKeyToken,omitempty"`
	Culture        string `json:"culture,omitempty"`
}

// Store implements ports.IdentityStore using a file-per-package strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the cached identity for key.
func (s *Store) Get(root string, key domain.PackageKey) (domain.Identity, bool, error) {
	filename := s.filename(root, key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Identity{}, false, nil
		}
		return domain.Identity{}, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filename)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Identity{}, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filename)
	}

	// Hash collisions read as misses.
	if !strings.EqualFold(rec.Name, key.Name) || rec.Version != key.Version {
		return domain.Identity{}, false, nil
	}

	return domain.Identity{
		Version:        rec.AssemblyVer,
		PublicKeyToken: rec.PublicKeyToken,
		Culture:        rec.Culture,
	}, true, nil
}

// Put stores the identity for key.
func (s *Store) Put(root string, key domain.PackageKey, id domain.Identity) error {
	data, err := json.MarshalIndent(record{
		Name:           key.Name,
		Version:        key.Version,
		AssemblyVer:    id.Version,
		PublicKeyToken: id.PublicKeyToken,
		Culture:        id.Culture,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	filename := s.filename(root, key)
	if err := atomicWriteFile(filename, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}
	return nil
}

func (s *Store) filename(root string, key domain.PackageKey) string {
	norm := key.Normalized()
	hash := xxhash.Sum64String(norm.String())
	return filepath.Join(domain.DefaultIdentityCachePath(root), fmt.Sprintf("%016x.json", hash))
}

// atomicWriteFile writes data to a temp file in the target directory and renames it,
// so concurrent readers never observe a partial record.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "identity-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
