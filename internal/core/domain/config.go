package domain

import "time"

const (
	// DefaultParallelism bounds concurrent registry queries.
	DefaultParallelism = 4

	// DefaultRegistryTimeout bounds a single registry query.
	DefaultRegistryTimeout = 5 * time.Minute

	// DefaultCheckoutBatchSize is the number of paths passed per checkout call.
	DefaultCheckoutBatchSize = 100
)

// Config holds the settings of a run.
type Config struct {
	Mode Mode

	// Exclude lists doublestar globs, relative to the root, that the
	// inventory skips.
	Exclude []string

	// Frameworks restricts aggregation to these lockfile targets. Empty means all.
	Frameworks []string

	Parallelism int

	// Cache enables the persisted identity cache.
	Cache bool

	Registry RegistryConfig
	Checkout CheckoutConfig
}

// RegistryConfig configures the package registry tool.
type RegistryConfig struct {
	Command string
	Source  string
	Timeout time.Duration
}

// CheckoutConfig configures the version control checkout tool.
type CheckoutConfig struct {
	Enabled   bool
	Edit      []string
	Add       []string
	BatchSize int
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		Mode:        ModeAligned,
		Parallelism: DefaultParallelism,
		Cache:       true,
		Registry: RegistryConfig{
			Command: "nuget",
			Timeout: DefaultRegistryTimeout,
		},
		Checkout: CheckoutConfig{
			Edit:      []string{"tf", "checkout"},
			Add:       []string{"tf", "add"},
			BatchSize: DefaultCheckoutBatchSize,
		},
	}
}
