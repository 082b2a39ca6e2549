package domain

// LibraryKindPackage marks lockfile entries that are registry packages.
const LibraryKindPackage = "package"

// Lockfile is a project's resolved dependency graph, one set of entries per
// target framework.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int

	// Targets maps a target framework moniker to the packages resolved for it.
	Targets map[string][]LockEntry
}

// LockEntry is one resolved library within a target.
type LockEntry struct {
	Name    string
	Version string

	// Kind is the library type, e.g. "package" or "project".
	Kind string

	// Dependencies maps a dependency name to a pinned version or a range
	// expression.
	Dependencies map[string]string
}

// IsPackage reports whether the entry is a registry package.
func (e LockEntry) IsPackage() bool {
	return e.Kind == "" || e.Kind == LibraryKindPackage
}
