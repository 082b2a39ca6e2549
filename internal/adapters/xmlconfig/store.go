package xmlconfig

import (
	"os"
	"path/filepath"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BindingDocumentStore = (*Store)(nil)

// Store reads and writes configuration documents on disk.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the document at path.
func (s *Store) Load(path string) (ports.BindingDocument, error) {
	//nolint:gosec // path comes from the workspace inventory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBindingConfigReadFailed.Error()), "path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// New returns an empty configuration document.
func (s *Store) New() ports.BindingDocument {
	return newDocument()
}

// Save writes doc to path. A read-only file is made writable first.
func (s *Store) Save(path string, doc ports.BindingDocument) error {
	data, err := doc.Bytes()
	if err != nil {
		return zerr.With(err, "path", path)
	}

	perm := os.FileMode(domain.FilePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
		if perm&0o200 == 0 {
			perm |= 0o200
			if err := os.Chmod(path, perm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrBindingConfigWriteFailed.Error()), "path", path)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBindingConfigWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBindingConfigWriteFailed.Error()), "path", path)
	}
	return nil
}
