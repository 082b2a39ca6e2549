package ports

import (
	"context"

	"go.trai.ch/rebind/internal/core/domain"
)

//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks

// WorkspaceLocator finds the projects of a workspace.
type WorkspaceLocator interface {
	// Locate walks root and returns every project that has a lockfile,
	// sorted by project file path. Paths matching an exclude glob are skipped.
	Locate(ctx context.Context, root string, exclude []string) ([]domain.ProjectLocation, error)
}

// LockfileReader parses a project's lockfile.
type LockfileReader interface {
	Read(path string) (*domain.Lockfile, error)
}
