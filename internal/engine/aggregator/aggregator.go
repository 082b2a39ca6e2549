// Package aggregator merges project lockfiles into per-project and
// workspace-wide dependency maps.
package aggregator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
)

// Aggregator builds a workspace from the located projects.
type Aggregator struct {
	reader ports.LockfileReader
	logger ports.Logger
}

// New creates a new Aggregator.
func New(reader ports.LockfileReader, logger ports.Logger) *Aggregator {
	return &Aggregator{reader: reader, logger: logger}
}

// Aggregate reads every project's lockfile. Versions are merged by taking the
// greater one; range expressions are narrowed. Projects whose lockfile cannot
// be read are logged and left out. When frameworks is not empty only the
// matching targets are considered.
func (a *Aggregator) Aggregate(root string, locations []domain.ProjectLocation, frameworks []string) *domain.Workspace {
	ws := domain.NewWorkspace(root)

	for _, loc := range locations {
		lockfile, err := a.reader.Read(loc.ManifestPath)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("skipping %s: %v", loc.ProjectFile, err))
			continue
		}

		project := domain.NewProject(loc)
		skipped := a.merge(ws, project, lockfile, frameworks)
		if skipped > 0 {
			a.logger.Debug(fmt.Sprintf("%s: ignored %d non-package entries", loc.Name(), skipped))
		}
		ws.Projects = append(ws.Projects, project)
	}

	return ws
}

// merge folds one lockfile into the project and workspace maps and returns the
// number of entries that are not packages.
func (a *Aggregator) merge(ws *domain.Workspace, project *domain.Project, lockfile *domain.Lockfile, frameworks []string) int {
	var nonPackages int

	for _, target := range slices.Sorted(maps.Keys(lockfile.Targets)) {
		if !matchesFramework(target, frameworks) {
			continue
		}

		for _, entry := range lockfile.Targets[target] {
			if !entry.IsPackage() {
				nonPackages++
				continue
			}

			project.Usages.MergeVersion(entry.Name, entry.Version)
			ws.Packages.MergeVersion(entry.Name, entry.Version)

			for _, dep := range slices.Sorted(maps.Keys(entry.Dependencies)) {
				a.mergeDependency(ws, project, dep, entry.Dependencies[dep])
			}
		}
	}

	return nonPackages
}

func (a *Aggregator) mergeDependency(ws *domain.Workspace, project *domain.Project, name, value string) {
	if !domain.IsRangeExpression(value) {
		project.Usages.MergeVersion(name, value)
		ws.Packages.MergeVersion(name, value)
		return
	}

	r, err := domain.ParseVersionRange(value)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("%s: ignoring range for %s: %v", project.Name(), name, err))
		return
	}

	a.mergeRange(project.Usages, project.Name(), name, r)
	a.mergeRange(ws.Packages, "workspace", name, r)
}

// mergeRange narrows the range for name. Narrowing can produce an empty range;
// it is kept and reported once.
func (a *Aggregator) mergeRange(m *domain.DependencyMap, scope, name string, r domain.VersionRange) {
	before, ok := m.Get(name)
	wasEmpty := ok && before.Range != nil && before.Range.IsEmpty()

	p, empty := m.MergeRange(name, r)
	if empty && !wasEmpty {
		a.logger.Warn(fmt.Sprintf("%s: version range for %s is empty after narrowing: %s", scope, p.Name, p.Range))
	}
}

// matchesFramework compares the framework part of a target ("net8.0" in
// "net8.0/win-x64") against the filter.
func matchesFramework(target string, frameworks []string) bool {
	if len(frameworks) == 0 {
		return true
	}
	tfm, _, _ := strings.Cut(target, "/")
	return slices.ContainsFunc(frameworks, func(f string) bool {
		return strings.EqualFold(f, tfm)
	})
}
