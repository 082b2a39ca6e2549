package ports

import (
	"context"

	"go.trai.ch/rebind/internal/core/domain"
)

//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks

// PackageRegistry downloads package releases for inspection.
type PackageRegistry interface {
	// Fetch downloads key and its transitive dependencies into outDir and
	// returns every package found there.
	Fetch(ctx context.Context, key domain.PackageKey, outDir string) ([]domain.PackageRef, error)
}

// PackageRegistryFactory builds a registry client for the configured tool.
type PackageRegistryFactory interface {
	NewRegistry(cfg domain.RegistryConfig) PackageRegistry
}

// ArtifactInspector reads assembly identities out of downloaded packages.
type ArtifactInspector interface {
	// Inspect returns the identity of the assembly named after ref inside ref.Dir.
	Inspect(ref domain.PackageRef) (domain.Identity, error)
}

// IdentityResolver maps a package release to its assembly identity.
type IdentityResolver interface {
	// Resolve returns the identity of name at version. ok is false when the
	// release cannot be resolved.
	Resolve(ctx context.Context, name, version string) (id domain.Identity, ok bool)
}

// IdentityStore persists resolved identities between runs, below a workspace root.
type IdentityStore interface {
	// Get returns the stored identity. ok is false when none is stored.
	Get(root string, key domain.PackageKey) (id domain.Identity, ok bool, err error)

	// Put stores the identity.
	Put(root string, key domain.PackageKey, id domain.Identity) error
}
