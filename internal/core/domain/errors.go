package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceRootNotFound is returned when the workspace root directory does not exist.
	ErrWorkspaceRootNotFound = zerr.New("workspace root not found")

	// ErrWorkspaceScanFailed is returned when walking the workspace tree fails.
	ErrWorkspaceScanFailed = zerr.New("failed to scan workspace")

	// ErrInvalidMode is returned when an unknown reconciliation mode is requested.
	ErrInvalidMode = zerr.New("invalid reconciliation mode")

	// ErrInvalidVersionRange is returned when a range expression cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrLockfileReadFailed is returned when a lockfile cannot be read from disk.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when a lockfile is not valid.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRegistryQueryFailed is returned when the package registry tool fails.
	ErrRegistryQueryFailed = zerr.New("package registry query failed")

	// ErrScratchDirFailed is returned when a scratch directory cannot be created.
	ErrScratchDirFailed = zerr.New("failed to create scratch directory")

	// ErrAssemblyNotFound is returned when a package contains no matching assembly.
	ErrAssemblyNotFound = zerr.New("assembly not found in package")

	// ErrInvalidAssembly is returned when an assembly's metadata cannot be read.
	ErrInvalidAssembly = zerr.New("invalid assembly metadata")

	// ErrBindingConfigReadFailed is returned when a binding document cannot be read.
	ErrBindingConfigReadFailed = zerr.New("failed to read binding config")

	// ErrBindingConfigParseFailed is returned when a binding document is not valid XML.
	ErrBindingConfigParseFailed = zerr.New("failed to parse binding config")

	// ErrBindingConfigWriteFailed is returned when a binding document cannot be written.
	ErrBindingConfigWriteFailed = zerr.New("failed to write binding config")

	// ErrCheckoutToolNotFound is returned when checkout is requested but the tool is missing.
	ErrCheckoutToolNotFound = zerr.New("checkout tool not found")

	// ErrCheckoutFailed is returned when a checkout batch fails.
	ErrCheckoutFailed = zerr.New("checkout failed")

	// ErrCacheReadFailed is returned when a persisted identity cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read identity cache")

	// ErrCacheWriteFailed is returned when an identity cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write identity cache")

	// ErrReconcileFailed is returned when a run aborts.
	ErrReconcileFailed = zerr.New("reconciliation failed")
)
