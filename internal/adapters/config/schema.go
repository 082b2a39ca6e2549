package config

// File represents the structure of the rebind.yaml configuration file.
// Unset fields keep their defaults.
type File struct {
	Version     string       `yaml:"version"`
	Mode        string       `yaml:"mode"`
	Exclude     []string     `yaml:"exclude"`
	Frameworks  []string     `yaml:"frameworks"`
	Parallelism *int         `yaml:"parallelism"`
	Cache       *bool        `yaml:"cache"`
	Registry    *RegistryDTO `yaml:"registry"`
	Checkout    *CheckoutDTO `yaml:"checkout"`
}

// RegistryDTO configures the package registry tool.
type RegistryDTO struct {
	Command string `yaml:"command"`
	Source  string `yaml:"source"`
	Timeout string `yaml:"timeout"`
}

// CheckoutDTO configures the version control checkout tool.
type CheckoutDTO struct {
	Enabled   bool     `yaml:"enabled"`
	Edit      []string `yaml:"edit"`
	Add       []string `yaml:"add"`
	BatchSize int      `yaml:"batchSize"`
}
