// Package lockfile reads NuGet lockfiles into domain.Lockfile values.
package lockfile

import (
	"bytes"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileReader = (*Reader)(nil)

// Reader parses project.assets.json and packages.lock.json documents.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the lockfile at path. The format is detected from its content.
func (r *Reader) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the workspace inventory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	lf, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lf, nil
}

// Parse decodes lockfile content.
func Parse(data []byte) (*domain.Lockfile, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var probe struct {
		Targets      json.RawMessage `json:"targets"`
		Dependencies json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	switch {
	case probe.Targets != nil:
		return parseAssets(data)
	case probe.Dependencies != nil:
		return parsePackagesLock(data)
	default:
		return nil, zerr.With(domain.ErrLockfileParseFailed, "reason", "no targets or dependencies section")
	}
}

func parseAssets(data []byte) (*domain.Lockfile, error) {
	var file assetsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	lf := &domain.Lockfile{
		Version: file.Version,
		Targets: make(map[string][]domain.LockEntry, len(file.Targets)),
	}
	for target, libraries := range file.Targets {
		entries := make([]domain.LockEntry, 0, len(libraries))
		for key, lib := range libraries {
			name, version, ok := strings.Cut(key, "/")
			if !ok {
				return nil, zerr.With(zerr.With(domain.ErrLockfileParseFailed, "target", target), "library", key)
			}
			entries = append(entries, domain.LockEntry{
				Name:         name,
				Version:      version,
				Kind:         strings.ToLower(lib.Type),
				Dependencies: lib.Dependencies,
			})
		}
		lf.Targets[target] = entries
	}
	return lf, nil
}

func parsePackagesLock(data []byte) (*domain.Lockfile, error) {
	var file packagesLockFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	lf := &domain.Lockfile{
		Version: file.Version,
		Targets: make(map[string][]domain.LockEntry, len(file.Dependencies)),
	}
	for target, packages := range file.Dependencies {
		entries := make([]domain.LockEntry, 0, len(packages))
		for name, pkg := range packages {
			kind := domain.LibraryKindPackage
			if strings.EqualFold(pkg.Type, "project") {
				kind = "project"
			}
			entries = append(entries, domain.LockEntry{
				Name:         name,
				Version:      pkg.Resolved,
				Kind:         kind,
				Dependencies: pkg.Dependencies,
			})
		}
		lf.Targets[target] = entries
	}
	return lf, nil
}
