package domain

import (
	"slices"
	"strings"
)

// Report summarizes a reconciliation run.
type Report struct {
	RunID string
	Mode  Mode

	Projects int
	Packages int

	// Raised counts project usages moved up to the workspace version.
	Raised int

	// Reconciled lists the pairs that resolved to an identity.
	Reconciled []PackageKey

	// Skipped lists the pairs that could not be resolved, once each.
	Skipped []PackageKey

	// Changed lists binding documents that were rewritten.
	Changed []string

	// Created lists binding documents that were created.
	Created []string

	skipped map[PackageKey]struct{}
}

// Skip adds key to the skipped list unless it is already there.
func (r *Report) Skip(key PackageKey) {
	if r.skipped == nil {
		r.skipped = make(map[PackageKey]struct{})
	}
	norm := key.Normalized()
	if _, ok := r.skipped[norm]; ok {
		return
	}
	r.skipped[norm] = struct{}{}
	r.Skipped = append(r.Skipped, key)
}

// Sort orders every list for stable output.
func (r *Report) Sort() {
	byKey := func(a, b PackageKey) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return CompareVersions(a.Version, b.Version)
	}
	slices.SortFunc(r.Reconciled, byKey)
	slices.SortFunc(r.Skipped, byKey)
	slices.Sort(r.Changed)
	slices.Sort(r.Created)
}
