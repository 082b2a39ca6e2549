package ports

import "go.trai.ch/rebind/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration found in root. A missing file yields the defaults.
	Load(root string) (domain.Config, error)
}
