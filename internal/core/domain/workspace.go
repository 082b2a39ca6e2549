package domain

import (
	"path/filepath"
	"strings"
)

// DefaultBindingConfigName is the document created for projects that have none.
const DefaultBindingConfigName = "app.config"

// ProjectLocation is what the inventory knows about a project on disk.
type ProjectLocation struct {
	// ProjectFile is the path of the project file (e.g. "src/App/App.csproj").
	ProjectFile string

	// ManifestPath is the path of the project's lockfile.
	ManifestPath string

	// ConfigPaths lists the project's binding documents. May be empty.
	ConfigPaths []string
}

// Dir returns the project directory.
func (l ProjectLocation) Dir() string {
	return filepath.Dir(l.ProjectFile)
}

// Name returns the project name, the project file name without extension.
func (l ProjectLocation) Name() string {
	base := filepath.Base(l.ProjectFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Project is a buildable unit of the workspace with its reconciled package usages.
type Project struct {
	ProjectLocation

	// Usages holds the packages this project depends on.
	Usages *DependencyMap
}

// NewProject creates a project with an empty usage map.
func NewProject(loc ProjectLocation) *Project {
	return &Project{ProjectLocation: loc, Usages: NewDependencyMap()}
}

// NeedsNewConfig reports whether the project has no binding document yet.
func (p *Project) NeedsNewConfig() bool {
	return len(p.ConfigPaths) == 0
}

// DefaultConfigPath is where a new binding document is created.
func (p *Project) DefaultConfigPath() string {
	return filepath.Join(p.Dir(), DefaultBindingConfigName)
}

// Workspace is the aggregate of all projects and the workspace-wide package map.
type Workspace struct {
	Root     string
	Projects []*Project

	// Packages holds one record per package name across every project.
	Packages *DependencyMap
}

// NewWorkspace creates an empty workspace rooted at root.
func NewWorkspace(root string) *Workspace {
	return &Workspace{Root: root, Packages: NewDependencyMap()}
}
