package domain

import (
	"slices"
	"strings"
)

// DependencyMap holds at most one PackageVersion per package name.
// Names are matched case-insensitively; the first spelling seen is kept.
type DependencyMap struct {
	entries map[string]*PackageVersion
}

// NewDependencyMap creates an empty map.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{entries: make(map[string]*PackageVersion)}
}

// Get returns the record for name.
func (m *DependencyMap) Get(name string) (*PackageVersion, bool) {
	p, ok := m.entries[strings.ToLower(name)]
	return p, ok
}

// Len returns the number of records.
func (m *DependencyMap) Len() int {
	return len(m.entries)
}

// Names returns the record names sorted case-insensitively.
func (m *DependencyMap) Names() []string {
	names := make([]string, 0, len(m.entries))
	for _, p := range m.entries {
		names = append(names, p.Name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names
}

// All returns the records sorted by name.
func (m *DependencyMap) All() []*PackageVersion {
	names := m.Names()
	out := make([]*PackageVersion, 0, len(names))
	for _, name := range names {
		p, _ := m.Get(name)
		out = append(out, p)
	}
	return out
}

func (m *DependencyMap) ensure(name string) *PackageVersion {
	key := strings.ToLower(name)
	p, ok := m.entries[key]
	if !ok {
		p = NewPackageVersion(name, "")
		m.entries[key] = p
	}
	return p
}

// MergeVersion records version for name, keeping the greater of the existing
// and the new version. Ties keep the existing value.
func (m *DependencyMap) MergeVersion(name, version string) *PackageVersion {
	p := m.ensure(name)
	if version == "" {
		return p
	}
	p.SetVersion(MaxVersion(p.Version, version))
	return p
}

// MergeRange narrows the record's range with r. It reports whether the
// narrowed range is empty; empty ranges are kept as they are.
func (m *DependencyMap) MergeRange(name string, r VersionRange) (*PackageVersion, bool) {
	p := m.ensure(name)
	if p.Range == nil {
		narrowed := r
		p.Range = &narrowed
	} else {
		narrowed := p.Range.Narrow(r)
		p.Range = &narrowed
	}
	return p, p.Range.IsEmpty()
}
