package domain

import "path/filepath"

const (
	// RebindDirName is the name of the internal workspace directory.
	RebindDirName = ".rebind"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// IdentitiesDirName is the name of the persisted identity cache directory.
	IdentitiesDirName = "identities"

	// ConfigFileName is the name of the optional workspace configuration file.
	ConfigFileName = "rebind.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the cache root below the workspace root.
func DefaultCachePath(root string) string {
	return filepath.Join(root, RebindDirName, CacheDirName)
}

// DefaultIdentityCachePath returns the persisted identity cache directory.
// It joins .rebind, cache and identities.
func DefaultIdentityCachePath(root string) string {
	return filepath.Join(root, RebindDirName, CacheDirName, IdentitiesDirName)
}
