// Package assembly reads strong-name identities out of managed assemblies.
package assembly

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	peparser "github.com/saferwall/pe"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactInspector = (*Inspector)(nil)

// Inspector finds a package's primary assembly and reads its identity.
type Inspector struct {
	logger ports.Logger
}

// NewInspector creates a new Inspector.
func NewInspector(logger ports.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// Inspect locates <Name>.dll inside the downloaded package folder and reads
// its manifest.
func (i *Inspector) Inspect(ref domain.PackageRef) (domain.Identity, error) {
	file, err := FindAssembly(ref.Dir, ref.Name)
	if err != nil {
		return domain.Identity{}, err
	}

	info, err := ReadFile(file)
	if err != nil {
		return domain.Identity{}, zerr.With(err, "package", ref.String())
	}

	if !strings.EqualFold(info.Name, ref.Name) {
		i.logger.Debug(fmt.Sprintf("assembly %s in package %s has a different name", info.Name, ref.String()))
	}
	return info.Identity, nil
}

// FindAssembly returns the assembly named after the package. Folders under
// lib/ are preferred; the last match in sorted order wins so that the newest
// target framework is used.
func FindAssembly(dir, name string) (string, error) {
	fsys := os.DirFS(dir)
	want := strings.ToLower(name) + ".dll"

	for _, pattern := range []string{"lib/**/*.dll", "**/*.dll"} {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrAssemblyNotFound.Error()), "dir", dir)
		}
		matches = slices.DeleteFunc(matches, func(m string) bool {
			return strings.ToLower(path.Base(m)) != want
		})
		if len(matches) == 0 {
			continue
		}
		slices.Sort(matches)
		return filepath.Join(dir, filepath.FromSlash(matches[len(matches)-1])), nil
	}

	return "", zerr.With(zerr.With(domain.ErrAssemblyNotFound, "dir", dir), "assembly", name+".dll")
}

// ReadFile reads the assembly manifest of a PE file.
func ReadFile(file string) (Info, error) {
	f, err := peparser.New(file, &peparser.Options{})
	if err != nil {
		return Info{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidAssembly.Error()), "file", file)
	}
	defer func() { _ = f.Close() }()

	if err := f.Parse(); err != nil {
		return Info{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidAssembly.Error()), "file", file)
	}
	if len(f.CLR.MetadataTables) == 0 {
		return Info{}, zerr.With(zerr.With(domain.ErrInvalidAssembly, "reason", "not a managed assembly"), "file", file)
	}

	info, err := manifest(&f.CLR)
	if err != nil {
		return Info{}, zerr.With(err, "file", file)
	}
	return info, nil
}
