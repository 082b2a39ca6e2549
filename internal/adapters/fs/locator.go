package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceLocator = (*Locator)(nil)

var projectExtensions = []string{".csproj", ".vbproj", ".fsproj"}

var bindingConfigNames = []string{"app.config", "web.config"}

// Manifest locations relative to the project directory, in order of preference.
var manifestCandidates = []string{
	filepath.Join("obj", "project.assets.json"),
	"packages.lock.json",
}

// Locator finds projects, their lockfiles and binding documents.
type Locator struct {
	walker *Walker
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(walker *Walker, log ports.Logger) *Locator {
	return &Locator{walker: walker, logger: log}
}

// Locate walks root and returns every project that has a lockfile.
func (l *Locator) Locate(ctx context.Context, root string, exclude []string) ([]domain.ProjectLocation, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrWorkspaceRootNotFound, "root", root)
	}

	var locations []domain.ProjectLocation
	for path := range l.walker.WalkFiles(root, exclude) {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, domain.ErrWorkspaceScanFailed.Error())
		}

		if !isProjectFile(path) {
			continue
		}

		loc, ok := l.describe(path)
		if !ok {
			continue
		}
		locations = append(locations, loc)
	}

	slices.SortFunc(locations, func(a, b domain.ProjectLocation) int {
		return strings.Compare(a.ProjectFile, b.ProjectFile)
	})
	return locations, nil
}

func (l *Locator) describe(projectFile string) (domain.ProjectLocation, bool) {
	dir := filepath.Dir(projectFile)
	loc := domain.ProjectLocation{ProjectFile: projectFile}

	for _, candidate := range manifestCandidates {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			loc.ManifestPath = path
			break
		}
	}
	if loc.ManifestPath == "" {
		l.logger.Debug("skipping " + projectFile + ": no lockfile, restore the project first")
		return loc, false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Warn("cannot list " + dir + ": " + err.Error())
		return loc, true
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slices.Contains(bindingConfigNames, strings.ToLower(entry.Name())) {
			loc.ConfigPaths = append(loc.ConfigPaths, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(loc.ConfigPaths)

	return loc, true
}

func isProjectFile(path string) bool {
	return slices.Contains(projectExtensions, strings.ToLower(filepath.Ext(path)))
}
